package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"email" json:"email"`

	// Never serialized. All outbound representations go through ToDTO.
	PasswordHash string `db:"password_hash" json:"-"`

	Role     Role `db:"role" json:"role"`
	IsActive bool `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the two accepted values.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

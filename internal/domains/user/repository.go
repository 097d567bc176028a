package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists / ErrUsernameAlreadyExists on conflict.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail is used for login.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile fields (username, email).
	Update(ctx context.Context, user *User) error

	// List returns a filtered, created_at-descending page of users plus the
	// total count of matching rows.
	List(ctx context.Context, req ListUsersRequest) ([]User, int, error)

	// UpdateRole sets the role and returns the updated user.
	UpdateRole(ctx context.Context, userID uuid.UUID, role Role) (*User, error)

	// UpdateStatus sets is_active and returns the updated user.
	UpdateStatus(ctx context.Context, userID uuid.UUID, isActive bool) (*User, error)

	// DeleteWithContent removes the user together with every blog and
	// comment they authored, in a single transaction.
	DeleteWithContent(ctx context.Context, userID uuid.UUID) error
}

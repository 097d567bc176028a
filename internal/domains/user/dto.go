package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         UserDTO   `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != nil, validation.Length(3, 50)),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email),
		),
	)
}

// UserDTO is the only outbound user representation. The password hash
// never leaves the service layer through any other path.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDTO converts the entity to its redacted public shape.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersRequest filters and paginates the admin user listing.
// status is a boolean-as-string query param, matching the public contract.
type ListUsersRequest struct {
	Search   string `form:"search"`
	Role     *Role  `form:"role"`
	IsActive *bool  `form:"status"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// SetDefaults clamps page and limit. The source left zero and negative
// values undefined; here they fold into the defaults.
func (r *ListUsersRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

func (r ListUsersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.When(r.Role != nil, validation.In(RoleUser, RoleAdmin)),
		),
	)
}

// ListUsersResponse is the paginated admin listing payload.
type ListUsersResponse struct {
	Users       []UserDTO `json:"users"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	TotalUsers  int       `json:"totalUsers"`
}

// UpdateRoleRequest mutates a user's role.
type UpdateRoleRequest struct {
	Role Role `json:"role" binding:"required"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(RoleUser, RoleAdmin).Error("role must be user or admin"),
		),
	)
}

// UpdateStatusRequest toggles is_active. Pointer so a missing field is
// rejected instead of silently deactivating.
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil.Error("isActive is required")),
	)
}

// RoleStats is the grouped aggregate over role="user" accounts.
type RoleStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
}

package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for accounts and authentication.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (UserDTO, error)
}

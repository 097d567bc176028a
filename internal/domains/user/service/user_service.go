package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

type userService struct {
	repo         user.Repository
	jwtManager   *jwt.Manager
	accessExpiry time.Duration
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager, accessExpiry time.Duration) user.Service {
	return &userService{
		repo:         repo,
		jwtManager:   jwtManager,
		accessExpiry: accessExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return user.UserDTO{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserDTO{}, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return user.UserDTO{}, err
	}

	logger.Info("user registered", map[string]interface{}{"user_id": u.ID.String()})

	return u.ToDTO(), nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not leak which part of the credentials failed.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	return s.issueTokens(u)
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*user.LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	return s.issueTokens(u)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return user.UserDTO{}, err
	}
	return u.ToDTO(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return user.UserDTO{}, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return user.UserDTO{}, err
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return user.UserDTO{}, err
	}

	return u.ToDTO(), nil
}

func (s *userService) issueTokens(u *user.User) (*user.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username, u.Role.String())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.accessExpiry),
		User:         u.ToDTO(),
	}, nil
}

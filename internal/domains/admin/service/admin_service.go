package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	statsCacheKey = "admin:dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

type adminService struct {
	stats        admin.StatsRepository
	userRepo     user.Repository
	blogRepo     blog.Repository
	categoryRepo category.Repository
	cache        cache.Cache
}

func NewAdminService(
	stats admin.StatsRepository,
	userRepo user.Repository,
	blogRepo blog.Repository,
	categoryRepo category.Repository,
	cache cache.Cache,
) admin.Service {
	return &adminService{
		stats:        stats,
		userRepo:     userRepo,
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// GetDashboardStats runs all six aggregate queries concurrently and waits
// for every one before responding. Any single failure fails the whole
// request; no partial results are returned.
func (s *adminService) GetDashboardStats(ctx context.Context) (*admin.DashboardStats, error) {
	var cached admin.DashboardStats
	if found, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var stats admin.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.stats.CountUsers(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.Blogs, err = s.stats.CountBlogs(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.Comments, err = s.stats.CountComments(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.Categories, err = s.stats.CountCategories(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.UserStats, err = s.stats.UserRoleStats(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.BlogStats, err = s.stats.BlogStats(gctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL)

	return &stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}

	return &user.ListUsersResponse{
		Users:       dtos,
		TotalPages:  int(math.Ceil(float64(total) / float64(req.Limit))),
		CurrentPage: req.Page,
		TotalUsers:  total,
	}, nil
}

func (s *adminService) ToggleUserStatus(ctx context.Context, userID uuid.UUID, isActive bool) (user.UserDTO, error) {
	u, err := s.userRepo.UpdateStatus(ctx, userID, isActive)
	if err != nil {
		return user.UserDTO{}, err
	}

	s.invalidateStats(ctx)

	return u.ToDTO(), nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, req user.UpdateRoleRequest) (user.UserDTO, error) {
	// Invalid roles are rejected before any store call.
	if err := req.Validate(); err != nil {
		return user.UserDTO{}, err
	}

	u, err := s.userRepo.UpdateRole(ctx, userID, req.Role)
	if err != nil {
		return user.UserDTO{}, err
	}

	s.invalidateStats(ctx)

	return u.ToDTO(), nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	// Resolve first so an unknown id returns NotFound without touching
	// anything else.
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteWithContent(ctx, userID); err != nil {
		return err
	}

	logger.Info("user and associated content deleted", map[string]interface{}{
		"user_id": userID.String(),
	})

	s.invalidateStats(ctx)

	return nil
}

func (s *adminService) ListBlogs(ctx context.Context, req blog.ListBlogsRequest) (*blog.ListBlogsResponse, error) {
	req.SetDefaults()

	blogs, total, err := s.blogRepo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	return &blog.ListBlogsResponse{
		Blogs:       blogs,
		TotalPages:  int(math.Ceil(float64(total) / float64(req.Limit))),
		CurrentPage: req.Page,
		TotalBlogs:  total,
	}, nil
}

func (s *adminService) DeleteBlog(ctx context.Context, blogID uuid.UUID) error {
	if _, err := s.blogRepo.FindByID(ctx, blogID); err != nil {
		return err
	}

	if err := s.blogRepo.DeleteWithComments(ctx, blogID); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *adminService) ListCategories(ctx context.Context) ([]category.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &category.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	return c, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteWithUnset(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *adminService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		logger.Warn("failed to invalidate stats cache", map[string]interface{}{"error": err.Error()})
	}
}

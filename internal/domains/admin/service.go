package admin

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/user"
)

// Service is the administrative data-management surface: user lifecycle,
// blog moderation, category management and dashboard aggregation.
// Authentication and role gating happen upstream in middleware.
type Service interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)

	ListUsers(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error)
	ToggleUserStatus(ctx context.Context, userID uuid.UUID, isActive bool) (user.UserDTO, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, req user.UpdateRoleRequest) (user.UserDTO, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	ListBlogs(ctx context.Context, req blog.ListBlogsRequest) (*blog.ListBlogsResponse, error)
	DeleteBlog(ctx context.Context, blogID uuid.UUID) error

	ListCategories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

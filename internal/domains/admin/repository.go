package admin

import (
	"context"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/user"
)

// StatsRepository exposes the aggregate queries behind the dashboard.
// Each method is a single store round trip so the service can fan them
// out concurrently.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountBlogs(ctx context.Context) (int, error)
	CountComments(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)

	// UserRoleStats aggregates accounts with role "user" into total and
	// active counts.
	UserRoleStats(ctx context.Context) (user.RoleStats, error)

	// BlogStats aggregates all blogs into total blog and comment counts.
	BlogStats(ctx context.Context) (blog.BlogStats, error)
}

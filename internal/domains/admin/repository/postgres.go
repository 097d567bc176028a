package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) admin.StatsRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *postgresRepository) CountBlogs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM blogs`)
}

func (r *postgresRepository) CountComments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM comments`)
}

func (r *postgresRepository) CountCategories(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// UserRoleStats counts role="user" accounts and how many of them are
// active. Aggregates without GROUP BY always return one row, so an empty
// table yields zeros rather than no result.
func (r *postgresRepository) UserRoleStats(ctx context.Context) (user.RoleStats, error) {
	var stats user.RoleStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM users
		WHERE role = 'user'
	`).Scan(&stats.TotalUsers, &stats.ActiveUsers)
	if err != nil {
		return user.RoleStats{}, fmt.Errorf("user role stats: %w", err)
	}
	return stats, nil
}

func (r *postgresRepository) BlogStats(ctx context.Context) (blog.BlogStats, error) {
	var stats blog.BlogStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM blogs),
			(SELECT COUNT(*) FROM comments)
	`).Scan(&stats.TotalBlogs, &stats.TotalComments)
	if err != nil {
		return blog.BlogStats{}, fmt.Errorf("blog stats: %w", err)
	}
	return stats, nil
}

func (r *postgresRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

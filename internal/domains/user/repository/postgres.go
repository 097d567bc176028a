package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

const userCacheTTL = 5 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailAlreadyExists
			}
			return user.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// FindByID reads through the cache (cache-aside).
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	cacheKey := userCacheKey(id)

	var cached user.User
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, username, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, u, userCacheTTL)

	return u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, u.ID, u.Username, u.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailAlreadyExists
			}
			return user.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	_ = r.cache.Delete(ctx, userCacheKey(u.ID))

	return nil
}

func (r *postgresRepository) List(ctx context.Context, req user.ListUsersRequest) ([]user.User, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, username, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE 1=1
	`)

	args := []interface{}{}
	argPos := 1

	if req.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (username ILIKE $%d OR email ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+req.Search+"%")
		argPos++
	}

	if req.Role != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND role = $%d", argPos))
		args = append(args, *req.Role)
		argPos++
	}

	if req.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND is_active = $%d", argPos))
		args = append(args, *req.IsActive)
		argPos++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS t", queryBuilder.String())
	countArgs := append([]interface{}{}, args...)

	queryBuilder.WriteString(" ORDER BY created_at DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, req.Limit, (req.Page-1)*req.Limit)
	pageQuery := queryBuilder.String()

	// Count and page fetch run concurrently on separate pool connections.
	var (
		total int
		users []user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, pageQuery, args...)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()

		users = make([]user.User, 0, req.Limit)
		for rows.Next() {
			var u user.User
			if err := rows.Scan(
				&u.ID,
				&u.Username,
				&u.Email,
				&u.PasswordHash,
				&u.Role,
				&u.IsActive,
				&u.CreatedAt,
				&u.UpdatedAt,
			); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *postgresRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role user.Role) (*user.User, error) {
	query := `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, email, password_hash, role, is_active, created_at, updated_at
	`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, userID, role))
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, userCacheKey(userID))

	return u, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, isActive bool) (*user.User, error) {
	query := `
		UPDATE users
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, email, password_hash, role, is_active, created_at, updated_at
	`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, userID, isActive))
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, userCacheKey(userID))

	return u, nil
}

// DeleteWithContent removes the user's comments, their blogs (with the
// comments attached to those blogs), and finally the user row, all in one
// transaction. Like and bookmark rows on the removed blogs and comments
// cascade at the schema level.
func (r *postgresRepository) DeleteWithContent(ctx context.Context, userID uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM comments
			WHERE author_id = $1
			   OR blog_id IN (SELECT id FROM blogs WHERE author_id = $1)
		`, userID); err != nil {
			return fmt.Errorf("delete authored comments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM blogs WHERE author_id = $1`, userID); err != nil {
			return fmt.Errorf("delete authored blogs: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if result.RowsAffected() == 0 {
			return user.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, userCacheKey(userID))

	return nil
}

func (r *postgresRepository) scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

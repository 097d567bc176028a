package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/category"
	"blog-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	query := `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// DeleteWithUnset clears blogs.category_id first so a failed delete still
// leaves blogs correctly de-referenced, then removes the category. Both
// steps commit together.
func (r *postgresRepository) DeleteWithUnset(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE blogs SET category_id = NULL WHERE category_id = $1
		`, id); err != nil {
			return fmt.Errorf("unset category references: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		if result.RowsAffected() == 0 {
			return category.ErrCategoryNotFound
		}

		return nil
	})
}

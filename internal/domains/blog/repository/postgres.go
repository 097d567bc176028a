package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"blog-backend/internal/domains/blog"
	"blog-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *blog.Blog) error {
	query := `
		INSERT INTO blogs (id, title, content, author_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.Content, b.AuthorID, b.CategoryID, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	query := `
		SELECT id, title, content, author_id, category_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var b blog.Blog
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.CategoryID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &b, nil
}

// refsQuery joins author and category and counts comments and likes.
// The category join is LEFT so blogs with an unset category still appear.
const refsQuery = `
	SELECT
		b.id, b.title, b.content, b.author_id, b.category_id, b.created_at, b.updated_at,
		u.id, u.username, u.email,
		c.id, c.name,
		(SELECT COUNT(*) FROM comments cm WHERE cm.blog_id = b.id),
		(SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.id)
	FROM blogs b
	JOIN users u ON u.id = b.author_id
	LEFT JOIN categories c ON c.id = b.category_id
`

func (r *postgresRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*blog.BlogWithRefs, error) {
	row := r.pool.QueryRow(ctx, refsQuery+" WHERE b.id = $1", id)

	b, err := scanBlogWithRefs(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, req blog.ListBlogsRequest) ([]blog.BlogWithRefs, int, error) {
	// Count and page fetch run concurrently on separate pool connections.
	var (
		total int
		blogs []blog.BlogWithRefs
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, `SELECT COUNT(*) FROM blogs`).Scan(&total); err != nil {
			return fmt.Errorf("count blogs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := refsQuery + " ORDER BY b.created_at DESC LIMIT $1 OFFSET $2"
		rows, err := r.pool.Query(gctx, query, req.Limit, (req.Page-1)*req.Limit)
		if err != nil {
			return fmt.Errorf("list blogs: %w", err)
		}
		defer rows.Close()

		blogs = make([]blog.BlogWithRefs, 0, req.Limit)
		for rows.Next() {
			b, err := scanBlogWithRefs(rows)
			if err != nil {
				return err
			}
			blogs = append(blogs, *b)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *blog.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, content = $3, category_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.Content, b.CategoryID)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

// DeleteWithComments removes the blog's comments first, then the blog
// itself. Like and bookmark rows cascade at the schema level. Both steps
// commit together.
func (r *postgresRepository) DeleteWithComments(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE blog_id = $1`, id); err != nil {
			return fmt.Errorf("delete blog comments: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete blog: %w", err)
		}
		if result.RowsAffected() == 0 {
			return blog.ErrBlogNotFound
		}

		return nil
	})
}

func (r *postgresRepository) ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2
	`, blogID, userID)
	if err != nil {
		return false, fmt.Errorf("unlike blog: %w", err)
	}
	if result.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO blog_likes (blog_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING
	`, blogID, userID); err != nil {
		return false, fmt.Errorf("like blog: %w", err)
	}

	return true, nil
}

func (r *postgresRepository) LikeCount(ctx context.Context, blogID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM blog_likes WHERE blog_id = $1
	`, blogID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count blog likes: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ToggleBookmark(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM blog_bookmarks WHERE blog_id = $1 AND user_id = $2
	`, blogID, userID)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	if result.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO blog_bookmarks (blog_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING
	`, blogID, userID); err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}

	return true, nil
}

func (r *postgresRepository) HasLiked(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	var liked bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_id = $2)
	`, blogID, userID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("check blog like: %w", err)
	}
	return liked, nil
}

func scanBlogWithRefs(row pgx.Row) (*blog.BlogWithRefs, error) {
	var b blog.BlogWithRefs
	var catID *uuid.UUID
	var catName *string

	err := row.Scan(
		&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.CategoryID, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Username, &b.Author.Email,
		&catID, &catName,
		&b.CommentCount,
		&b.LikeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}

	if catID != nil && catName != nil {
		b.Category = &blog.CategoryRef{ID: *catID, Name: *catName}
	}

	return &b, nil
}

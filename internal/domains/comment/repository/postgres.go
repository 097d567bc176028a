package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, cm *comment.Comment) error {
	query := `
		INSERT INTO comments (id, blog_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, cm.ID, cm.BlogID, cm.AuthorID, cm.Content, cm.CreatedAt)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `
		SELECT id, blog_id, author_id, content, created_at
		FROM comments
		WHERE id = $1
	`

	var cm comment.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(&cm.ID, &cm.BlogID, &cm.AuthorID, &cm.Content, &cm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &cm, nil
}

func (r *postgresRepository) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]comment.CommentWithAuthor, error) {
	query := `
		SELECT
			cm.id, cm.blog_id, cm.author_id, cm.content, cm.created_at,
			u.username,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = cm.id)
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.blog_id = $1
		ORDER BY cm.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.CommentWithAuthor, 0)
	for rows.Next() {
		var cm comment.CommentWithAuthor
		if err := rows.Scan(
			&cm.ID, &cm.BlogID, &cm.AuthorID, &cm.Content, &cm.CreatedAt,
			&cm.AuthorUsername,
			&cm.LikeCount,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) Like(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comment_likes (comment_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING
	`, commentID, userID)
	if err != nil {
		return fmt.Errorf("like comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) Unlike(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2
	`, commentID, userID)
	if err != nil {
		return fmt.Errorf("unlike comment: %w", err)
	}
	return nil
}

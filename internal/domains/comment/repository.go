package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for comments and comment likes.
type Repository interface {
	Create(ctx context.Context, comment *Comment) error

	// FindByID returns ErrCommentNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListByBlog returns a blog's comments newest first.
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]CommentWithAuthor, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// Like is idempotent: liking twice is a no-op.
	Like(ctx context.Context, commentID, userID uuid.UUID) error

	Unlike(ctx context.Context, commentID, userID uuid.UUID) error
}

package comment

import (
	"context"

	"github.com/google/uuid"
)

// Principal identifies the caller for ownership checks.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// Service is the business logic contract for comments.
type Service interface {
	Add(ctx context.Context, authorID uuid.UUID, req CreateCommentRequest) (*Comment, error)
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]CommentWithAuthor, error)
	// Delete requires the caller to be the comment owner or an admin.
	Delete(ctx context.Context, principal Principal, id uuid.UUID) error
	Like(ctx context.Context, commentID, userID uuid.UUID) error
	Unlike(ctx context.Context, commentID, userID uuid.UUID) error
}

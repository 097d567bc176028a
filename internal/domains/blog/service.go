package blog

import (
	"context"

	"github.com/google/uuid"
)

// Principal identifies the caller for ownership checks.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the principal may act on content they do not own.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// Service is the business logic contract for the public blog surface.
type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req CreateBlogRequest) (*BlogWithRefs, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlogWithRefs, error)
	List(ctx context.Context, req ListBlogsRequest) (*ListBlogsResponse, error)
	Update(ctx context.Context, principal Principal, id uuid.UUID, req UpdateBlogRequest) (*BlogWithRefs, error)
	Delete(ctx context.Context, principal Principal, id uuid.UUID) error
	ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (*LikeStatus, error)
	LikeCount(ctx context.Context, blogID uuid.UUID) (*LikeStatus, error)
	LikeStatusFor(ctx context.Context, blogID, userID uuid.UUID) (*LikeStatus, error)
	ToggleBookmark(ctx context.Context, blogID, userID uuid.UUID) (*BookmarkStatus, error)
}

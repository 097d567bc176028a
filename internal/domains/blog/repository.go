package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for blogs and blog likes.
type Repository interface {
	Create(ctx context.Context, blog *Blog) error

	// FindByID returns the bare entity for ownership checks.
	// Returns ErrBlogNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*Blog, error)

	// FindByIDWithRefs resolves author and category references.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*BlogWithRefs, error)

	// List returns a created_at-descending page with references resolved,
	// plus the total blog count.
	List(ctx context.Context, req ListBlogsRequest) ([]BlogWithRefs, int, error)

	Update(ctx context.Context, blog *Blog) error

	// DeleteWithComments removes the blog's comments and then the blog,
	// in a single transaction.
	DeleteWithComments(ctx context.Context, id uuid.UUID) error

	// ToggleLike likes the blog for the user, or unlikes when already
	// liked. Returns the resulting liked state.
	ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (bool, error)

	LikeCount(ctx context.Context, blogID uuid.UUID) (int, error)

	HasLiked(ctx context.Context, blogID, userID uuid.UUID) (bool, error)

	// ToggleBookmark bookmarks the blog for the user, or removes the
	// bookmark when already set. Returns the resulting bookmarked state.
	ToggleBookmark(ctx context.Context, blogID, userID uuid.UUID) (bool, error)
}

package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for categories.
type Repository interface {
	Create(ctx context.Context, category *Category) error

	// FindByID returns ErrCategoryNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll returns every category sorted by name ascending.
	FindAll(ctx context.Context) ([]Category, error)

	Update(ctx context.Context, category *Category) error

	// DeleteWithUnset clears the category reference on every blog pointing
	// at it and then removes the category, in a single transaction.
	DeleteWithUnset(ctx context.Context, id uuid.UUID) error
}

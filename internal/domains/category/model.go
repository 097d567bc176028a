package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a label blogs reference weakly: deleting a category never
// deletes blogs, it only clears their reference.
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

package blog

import (
	"time"

	"github.com/google/uuid"
)

// Blog is the domain entity. Author and category are weak references; the
// category may be unset.
type Blog struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Content    string     `db:"content" json:"content"`
	AuthorID   uuid.UUID  `db:"author_id" json:"author_id"`
	CategoryID *uuid.UUID `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// AuthorRef is the resolved author reference on read.
type AuthorRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// CategoryRef is the resolved category reference on read.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BlogWithRefs is a blog with its references resolved, as returned by
// listings and detail reads.
type BlogWithRefs struct {
	Blog
	Author       AuthorRef    `json:"author"`
	Category     *CategoryRef `json:"category,omitempty"`
	CommentCount int          `json:"comment_count"`
	LikeCount    int          `json:"like_count"`
}

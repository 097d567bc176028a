package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is the domain entity. Blog and author are weak references.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BlogID    uuid.UUID `db:"blog_id" json:"blog_id"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentWithAuthor resolves the author reference for listings.
type CommentWithAuthor struct {
	Comment
	AuthorUsername string `json:"author_username"`
	LikeCount      int    `json:"like_count"`
}

package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateBlogRequest struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
	)
}

type UpdateBlogRequest struct {
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 200)),
		),
	)
}

// ListBlogsRequest paginates blog listings. No filters: the admin contract
// takes page and limit only.
type ListBlogsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListBlogsRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

type ListBlogsResponse struct {
	Blogs       []BlogWithRefs `json:"blogs"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	TotalBlogs  int            `json:"totalBlogs"`
}

// LikeStatus reports the outcome of a like toggle or a status probe.
type LikeStatus struct {
	BlogID uuid.UUID `json:"blog_id"`
	Liked  bool      `json:"liked"`
	Count  int       `json:"count"`
}

// BookmarkStatus reports the outcome of a bookmark toggle.
type BookmarkStatus struct {
	BlogID     uuid.UUID `json:"blog_id"`
	Bookmarked bool      `json:"bookmarked"`
}

// BlogStats is the grouped aggregate over all blogs.
type BlogStats struct {
	TotalBlogs    int `json:"totalBlogs"`
	TotalComments int `json:"totalComments"`
}

package blog

import "errors"

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrNotOwner     = errors.New("forbidden: not the blog owner")
)

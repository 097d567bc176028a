package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("forbidden: not the comment owner")
)

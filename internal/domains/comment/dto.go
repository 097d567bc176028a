package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	BlogID  uuid.UUID `json:"blogId" binding:"required"`
	Content string    `json:"content" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

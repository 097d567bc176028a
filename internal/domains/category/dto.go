package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest carries the fields for a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
	)
}

// UpdateCategoryRequest applies partial field updates.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Length(1, 100)),
		),
		validation.Field(&r.Description,
			validation.When(r.Description != nil, validation.Length(0, 500)),
		),
	)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// BlogHandler serves the public blog endpoints.
type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /blogs.
func (h *BlogHandler) List(c *gin.Context) {
	var req blog.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID handles GET /blogs/:id.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Delete handles DELETE /blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "blog and associated comments deleted"})
}

// ToggleLike handles POST /blogs/:id/like.
func (h *BlogHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	status, err := h.service.ToggleLike(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// ToggleBookmark handles POST /blogs/:id/bookmark.
func (h *BlogHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	status, err := h.service.ToggleBookmark(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

func principalFrom(c *gin.Context) (blog.Principal, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return blog.Principal{}, false
	}
	return blog.Principal{
		UserID: userID,
		Role:   middleware.RoleFromContext(c),
	}, true
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", validationErrs)

	case errors.Is(err, blog.ErrNotOwner):
		response.Forbidden(c, err.Error())

	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("unexpected error in blog handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByBlog handles GET /comments/:id where id is the blog id (public).
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	comments, err := h.service.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Add handles POST /comments.
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cm, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cm)
}

// Delete handles DELETE /comments/:id (owner or admin).
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	principal := comment.Principal{
		UserID: userID,
		Role:   middleware.RoleFromContext(c),
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "comment deleted"})
}

// Like handles POST /comments/:id/like.
func (h *CommentHandler) Like(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.Like(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "comment liked"})
}

// Unlike handles DELETE /comments/:id/like.
func (h *CommentHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.Unlike(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "comment unliked"})
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", validationErrs)

	case errors.Is(err, comment.ErrNotOwner):
		response.Forbidden(c, err.Error())

	case errors.Is(err, comment.ErrCommentNotFound),
		errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("unexpected error in comment handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// LikeHandler serves the standalone like endpoints mounted under /likes.
type LikeHandler struct {
	service blog.Service
}

func NewLikeHandler(service blog.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

type toggleLikeRequest struct {
	BlogID uuid.UUID `json:"blogId" binding:"required"`
}

// Toggle handles POST /likes.
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	status, err := h.service.ToggleLike(c.Request.Context(), req.BlogID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Count handles GET /likes/count/:blogID (public).
func (h *LikeHandler) Count(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("blogID"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	status, err := h.service.LikeCount(c.Request.Context(), blogID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Status handles GET /likes/status/:blogID.
func (h *LikeHandler) Status(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	blogID, err := uuid.Parse(c.Param("blogID"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	status, err := h.service.LikeStatusFor(c.Request.Context(), blogID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

func (h *LikeHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, blog.ErrBlogNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	logger.Error("unexpected error in like handler", err)
	response.InternalServerError(c, "Internal server error")
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// AdminHandler serves the administrative endpoints. Every route it is
// mounted on sits behind the Auth and AdminOnly middleware.
type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// GetDashboardStats handles GET /admin/dashboard/stats.
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.service.ListUsers(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ToggleUserStatus handles PATCH /admin/users/:id/status.
func (h *AdminHandler) ToggleUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req user.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	dto, err := h.service.ToggleUserStatus(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateUserRole handles PUT /admin/users/:id/role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req user.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "role is required")
		return
	}

	dto, err := h.service.UpdateUserRole(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "user and associated content deleted"})
}

// ListBlogs handles GET /admin/blogs.
func (h *AdminHandler) ListBlogs(c *gin.Context) {
	var req blog.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.service.ListBlogs(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteBlog handles DELETE /admin/blogs/:id.
func (h *AdminHandler) DeleteBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	if err := h.service.DeleteBlog(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "blog and associated comments deleted"})
}

// ListCategories handles GET /admin/categories.
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteCategory handles DELETE /admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", validationErrs)

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, blog.ErrBlogNotFound),
		errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("unexpected error in admin handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}

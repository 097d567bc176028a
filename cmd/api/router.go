package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupBlogRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupLikeRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me", c.UserHandler.UpdateProfile)
	}
}

func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.List)
		blogs.GET("/:id", c.BlogHandler.GetByID)

		protected := blogs.Group("")
		protected.Use(middleware.Auth(c.JWTManager))
		{
			protected.POST("", c.BlogHandler.Create)
			protected.PUT("/:id", c.BlogHandler.Update)
			protected.DELETE("/:id", c.BlogHandler.Delete)
			protected.POST("/:id/like", c.BlogHandler.ToggleLike)
			protected.POST("/:id/bookmark", c.BlogHandler.ToggleBookmark)
		}
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		comments.GET("/:id", c.CommentHandler.ListByBlog)

		protected := comments.Group("")
		protected.Use(middleware.Auth(c.JWTManager))
		{
			protected.POST("", c.CommentHandler.Add)
			protected.DELETE("/:id", c.CommentHandler.Delete)
			protected.POST("/:id/like", c.CommentHandler.Like)
			protected.DELETE("/:id/like", c.CommentHandler.Unlike)
		}
	}
}

func setupLikeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	likes := v1.Group("/likes")
	{
		likes.GET("/count/:blogID", c.LikeHandler.Count)

		protected := likes.Group("")
		protected.Use(middleware.Auth(c.JWTManager))
		{
			protected.POST("", c.LikeHandler.Toggle)
			protected.GET("/status/:blogID", c.LikeHandler.Status)
		}
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager), middleware.AdminOnly())
	{
		admin.GET("/dashboard/stats", c.AdminHandler.GetDashboardStats)

		admin.GET("/users", c.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/status", c.AdminHandler.ToggleUserStatus)
		admin.PUT("/users/:id/role", c.AdminHandler.UpdateUserRole)
		admin.DELETE("/users/:id", c.AdminHandler.DeleteUser)

		admin.GET("/blogs", c.AdminHandler.ListBlogs)
		admin.DELETE("/blogs/:id", c.AdminHandler.DeleteBlog)

		admin.GET("/categories", c.AdminHandler.ListCategories)
		admin.POST("/categories", c.AdminHandler.CreateCategory)
		admin.PUT("/categories/:id", c.AdminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", c.AdminHandler.DeleteCategory)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}

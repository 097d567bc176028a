package container

import (
	"context"
	"fmt"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	adminHandler "blog-backend/internal/domains/admin/handler"
	adminRepo "blog-backend/internal/domains/admin/repository"
	adminService "blog-backend/internal/domains/admin/service"
	"blog-backend/internal/domains/blog"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	"blog-backend/internal/domains/category"
	categoryRepo "blog-backend/internal/domains/category/repository"
	"blog-backend/internal/domains/comment"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Initialization order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo     user.Repository
	BlogRepo     blog.Repository
	CommentRepo  comment.Repository
	CategoryRepo category.Repository

	UserService    user.Service
	BlogService    blog.Service
	CommentService comment.Service

	UserHandler    *userHandler.UserHandler
	BlogHandler    *blogHandler.BlogHandler
	LikeHandler    *blogHandler.LikeHandler
	CommentHandler *commentHandler.CommentHandler
	AdminHandler   *adminHandler.AdminHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx := context.Background()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool)
	statsRepo := adminRepo.NewPostgresRepository(c.DB.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, cfg.JWT.AccessExpiry)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.BlogRepo)
	adminSvc := adminService.NewAdminService(statsRepo, c.UserRepo, c.BlogRepo, c.CategoryRepo, c.Cache)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.LikeHandler = blogHandler.NewLikeHandler(c.BlogService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.AdminHandler = adminHandler.NewAdminHandler(adminSvc)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

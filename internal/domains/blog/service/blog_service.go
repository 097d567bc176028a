package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, req blog.CreateBlogRequest) (*blog.BlogWithRefs, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &blog.Blog{
		ID:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.FindByIDWithRefs(ctx, b.ID)
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*blog.BlogWithRefs, error) {
	return s.repo.FindByIDWithRefs(ctx, id)
}

func (s *blogService) List(ctx context.Context, req blog.ListBlogsRequest) (*blog.ListBlogsResponse, error) {
	req.SetDefaults()

	blogs, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	return &blog.ListBlogsResponse{
		Blogs:       blogs,
		TotalPages:  int(math.Ceil(float64(total) / float64(req.Limit))),
		CurrentPage: req.Page,
		TotalBlogs:  total,
	}, nil
}

func (s *blogService) Update(ctx context.Context, principal blog.Principal, id uuid.UUID, req blog.UpdateBlogRequest) (*blog.BlogWithRefs, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.AuthorID != principal.UserID && !principal.IsAdmin() {
		return nil, blog.ErrNotOwner
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Content != nil {
		b.Content = *req.Content
	}
	if req.CategoryID != nil {
		b.CategoryID = req.CategoryID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.FindByIDWithRefs(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, principal blog.Principal, id uuid.UUID) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if b.AuthorID != principal.UserID && !principal.IsAdmin() {
		return blog.ErrNotOwner
	}

	return s.repo.DeleteWithComments(ctx, id)
}

func (s *blogService) ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (*blog.LikeStatus, error) {
	if _, err := s.repo.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.LikeCount(ctx, blogID)
	if err != nil {
		return nil, err
	}

	return &blog.LikeStatus{BlogID: blogID, Liked: liked, Count: count}, nil
}

func (s *blogService) LikeCount(ctx context.Context, blogID uuid.UUID) (*blog.LikeStatus, error) {
	if _, err := s.repo.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	count, err := s.repo.LikeCount(ctx, blogID)
	if err != nil {
		return nil, err
	}

	return &blog.LikeStatus{BlogID: blogID, Count: count}, nil
}

func (s *blogService) ToggleBookmark(ctx context.Context, blogID, userID uuid.UUID) (*blog.BookmarkStatus, error) {
	if _, err := s.repo.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	bookmarked, err := s.repo.ToggleBookmark(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	return &blog.BookmarkStatus{BlogID: blogID, Bookmarked: bookmarked}, nil
}

func (s *blogService) LikeStatusFor(ctx context.Context, blogID, userID uuid.UUID) (*blog.LikeStatus, error) {
	if _, err := s.repo.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLiked(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.LikeCount(ctx, blogID)
	if err != nil {
		return nil, err
	}

	return &blog.LikeStatus{BlogID: blogID, Liked: liked, Count: count}, nil
}

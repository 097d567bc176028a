package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/comment"
)

type commentService struct {
	repo     comment.Repository
	blogRepo blog.Repository
}

func NewCommentService(repo comment.Repository, blogRepo blog.Repository) comment.Service {
	return &commentService{
		repo:     repo,
		blogRepo: blogRepo,
	}
}

func (s *commentService) Add(ctx context.Context, authorID uuid.UUID, req comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The blog reference must resolve before the comment is created.
	if _, err := s.blogRepo.FindByID(ctx, req.BlogID); err != nil {
		return nil, err
	}

	cm := &comment.Comment{
		ID:        uuid.New(),
		BlogID:    req.BlogID,
		AuthorID:  authorID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, err
	}

	return cm, nil
}

func (s *commentService) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]comment.CommentWithAuthor, error) {
	return s.repo.ListByBlog(ctx, blogID)
}

func (s *commentService) Delete(ctx context.Context, principal comment.Principal, id uuid.UUID) error {
	cm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if cm.AuthorID != principal.UserID && !principal.IsAdmin() {
		return comment.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func (s *commentService) Like(ctx context.Context, commentID, userID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, commentID); err != nil {
		return err
	}
	return s.repo.Like(ctx, commentID, userID)
}

func (s *commentService) Unlike(ctx context.Context, commentID, userID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, commentID); err != nil {
		return err
	}
	return s.repo.Unlike(ctx, commentID, userID)
}

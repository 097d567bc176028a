package service_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/blog/service"
)

type fakeBlogRepo struct {
	blogs     map[uuid.UUID]blog.Blog
	likes     map[uuid.UUID]map[uuid.UUID]bool
	bookmarks map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs:     make(map[uuid.UUID]blog.Blog),
		likes:     make(map[uuid.UUID]map[uuid.UUID]bool),
		bookmarks: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (r *fakeBlogRepo) Create(_ context.Context, b *blog.Blog) error {
	r.blogs[b.ID] = *b
	return nil
}

func (r *fakeBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, blog.ErrBlogNotFound
	}
	return &b, nil
}

func (r *fakeBlogRepo) FindByIDWithRefs(_ context.Context, id uuid.UUID) (*blog.BlogWithRefs, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, blog.ErrBlogNotFound
	}
	return &blog.BlogWithRefs{Blog: b, LikeCount: len(r.likes[id])}, nil
}

func (r *fakeBlogRepo) List(_ context.Context, req blog.ListBlogsRequest) ([]blog.BlogWithRefs, int, error) {
	all := make([]blog.BlogWithRefs, 0, len(r.blogs))
	for _, b := range r.blogs {
		all = append(all, blog.BlogWithRefs{Blog: b})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	start := (req.Page - 1) * req.Limit
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeBlogRepo) Update(_ context.Context, b *blog.Blog) error {
	if _, ok := r.blogs[b.ID]; !ok {
		return blog.ErrBlogNotFound
	}
	r.blogs[b.ID] = *b
	return nil
}

func (r *fakeBlogRepo) DeleteWithComments(_ context.Context, id uuid.UUID) error {
	if _, ok := r.blogs[id]; !ok {
		return blog.ErrBlogNotFound
	}
	delete(r.blogs, id)
	delete(r.likes, id)
	return nil
}

func (r *fakeBlogRepo) ToggleLike(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	likes := r.likes[blogID]
	if likes == nil {
		likes = make(map[uuid.UUID]bool)
		r.likes[blogID] = likes
	}
	if likes[userID] {
		delete(likes, userID)
		return false, nil
	}
	likes[userID] = true
	return true, nil
}

func (r *fakeBlogRepo) LikeCount(_ context.Context, blogID uuid.UUID) (int, error) {
	return len(r.likes[blogID]), nil
}

func (r *fakeBlogRepo) HasLiked(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	return r.likes[blogID][userID], nil
}

func (r *fakeBlogRepo) ToggleBookmark(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	bookmarks := r.bookmarks[blogID]
	if bookmarks == nil {
		bookmarks = make(map[uuid.UUID]bool)
		r.bookmarks[blogID] = bookmarks
	}
	if bookmarks[userID] {
		delete(bookmarks, userID)
		return false, nil
	}
	bookmarks[userID] = true
	return true, nil
}

func seed(repo *fakeBlogRepo, authorID uuid.UUID, title string, createdAt time.Time) blog.Blog {
	b := blog.Blog{
		ID:        uuid.New(),
		Title:     title,
		Content:   "content",
		AuthorID:  authorID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	repo.blogs[b.ID] = b
	return b
}

func TestCreateBlog(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	author := uuid.New()

	created, err := svc.Create(context.Background(), author, blog.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", created.Title)
	assert.Equal(t, author, created.AuthorID)
	assert.Contains(t, repo.blogs, created.ID)
}

func TestCreateBlogValidation(t *testing.T) {
	svc := service.NewBlogService(newFakeBlogRepo())

	_, err := svc.Create(context.Background(), uuid.New(), blog.CreateBlogRequest{})
	assert.Error(t, err)
}

func TestUpdateBlogOwnership(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	b := seed(repo, owner, "original", time.Now())

	title := "edited"

	// A non-owner without the admin role is refused.
	_, err := svc.Update(ctx, blog.Principal{UserID: stranger, Role: "user"}, b.ID, blog.UpdateBlogRequest{Title: &title})
	assert.True(t, errors.Is(err, blog.ErrNotOwner))
	assert.Equal(t, "original", repo.blogs[b.ID].Title)

	// The owner may edit.
	updated, err := svc.Update(ctx, blog.Principal{UserID: owner, Role: "user"}, b.ID, blog.UpdateBlogRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)

	// So may an admin who is not the owner.
	title2 := "moderated"
	_, err = svc.Update(ctx, blog.Principal{UserID: stranger, Role: "admin"}, b.ID, blog.UpdateBlogRequest{Title: &title2})
	require.NoError(t, err)
	assert.Equal(t, "moderated", repo.blogs[b.ID].Title)
}

func TestDeleteBlogOwnership(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	owner := uuid.New()
	b := seed(repo, owner, "mine", time.Now())

	err := svc.Delete(ctx, blog.Principal{UserID: uuid.New(), Role: "user"}, b.ID)
	assert.True(t, errors.Is(err, blog.ErrNotOwner))
	assert.Contains(t, repo.blogs, b.ID)

	require.NoError(t, svc.Delete(ctx, blog.Principal{UserID: owner, Role: "user"}, b.ID))
	assert.NotContains(t, repo.blogs, b.ID)
}

func TestDeleteBlogNotFound(t *testing.T) {
	svc := service.NewBlogService(newFakeBlogRepo())

	err := svc.Delete(context.Background(), blog.Principal{UserID: uuid.New(), Role: "admin"}, uuid.New())
	assert.True(t, errors.Is(err, blog.ErrBlogNotFound))
}

func TestListBlogsPagination(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	author := uuid.New()

	base := time.Now()
	for i := 0; i < 7; i++ {
		seed(repo, author, "post", base.Add(time.Duration(i)*time.Minute))
	}

	resp, err := svc.List(context.Background(), blog.ListBlogsRequest{Page: 1, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, resp.Blogs, 3)
	assert.Equal(t, 7, resp.TotalBlogs)
	assert.Equal(t, 3, resp.TotalPages)

	// Zero values fold into the defaults.
	defaulted, err := svc.List(context.Background(), blog.ListBlogsRequest{})
	require.NoError(t, err)
	assert.Len(t, defaulted.Blogs, 7)
	assert.Equal(t, 1, defaulted.CurrentPage)
	assert.Equal(t, 1, defaulted.TotalPages)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	b := seed(repo, uuid.New(), "likeable", time.Now())
	userID := uuid.New()

	status, err := svc.ToggleLike(ctx, b.ID, userID)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.Count)

	status, err = svc.ToggleLike(ctx, b.ID, userID)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, 0, status.Count)
}

func TestToggleLikeUnknownBlog(t *testing.T) {
	svc := service.NewBlogService(newFakeBlogRepo())

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, blog.ErrBlogNotFound))
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	b := seed(repo, uuid.New(), "keeper", time.Now())
	reader := uuid.New()

	status, err := svc.ToggleBookmark(ctx, b.ID, reader)
	require.NoError(t, err)
	assert.True(t, status.Bookmarked)
	assert.Equal(t, b.ID, status.BlogID)

	status, err = svc.ToggleBookmark(ctx, b.ID, reader)
	require.NoError(t, err)
	assert.False(t, status.Bookmarked)
}

func TestToggleBookmarkUnknownBlog(t *testing.T) {
	svc := service.NewBlogService(newFakeBlogRepo())

	_, err := svc.ToggleBookmark(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, blog.ErrBlogNotFound))
}

func TestBookmarksAreIndependentOfLikes(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	b := seed(repo, uuid.New(), "keeper", time.Now())
	reader := uuid.New()

	_, err := svc.ToggleBookmark(ctx, b.ID, reader)
	require.NoError(t, err)

	likeStatus, err := svc.LikeStatusFor(ctx, b.ID, reader)
	require.NoError(t, err)
	assert.False(t, likeStatus.Liked)
	assert.Equal(t, 0, likeStatus.Count)
}

func TestLikeStatusFor(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := service.NewBlogService(repo)
	ctx := context.Background()

	b := seed(repo, uuid.New(), "likeable", time.Now())
	fan := uuid.New()
	bystander := uuid.New()

	_, err := svc.ToggleLike(ctx, b.ID, fan)
	require.NoError(t, err)

	status, err := svc.LikeStatusFor(ctx, b.ID, fan)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.Count)

	status, err = svc.LikeStatusFor(ctx, b.ID, bystander)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, 1, status.Count)
}

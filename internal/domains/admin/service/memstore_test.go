package service_test

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/user"
)

// memStore backs every fake repository so cross-entity behavior (cascading
// deletes, category unset) is observable the same way it is in postgres.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]user.User
	blogs         map[uuid.UUID]blog.Blog
	comments      map[uuid.UUID]comment.Comment
	categories    map[uuid.UUID]category.Category
	blogLikes     map[uuid.UUID]map[uuid.UUID]bool
	blogBookmarks map[uuid.UUID]map[uuid.UUID]bool
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uuid.UUID]user.User),
		blogs:         make(map[uuid.UUID]blog.Blog),
		comments:      make(map[uuid.UUID]comment.Comment),
		categories:    make(map[uuid.UUID]category.Category),
		blogLikes:     make(map[uuid.UUID]map[uuid.UUID]bool),
		blogBookmarks: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

// ---- user.Repository ----

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
		if existing.Username == u.Username {
			return user.ErrUsernameAlreadyExists
		}
	}
	r.store.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	r.store.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) List(_ context.Context, req user.ListUsersRequest) ([]user.User, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched := make([]user.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		if req.Search != "" && !containsFold(u.Username, req.Search) && !containsFold(u.Email, req.Search) {
			continue
		}
		if req.Role != nil && u.Role != *req.Role {
			continue
		}
		if req.IsActive != nil && u.IsActive != *req.IsActive {
			continue
		}
		matched = append(matched, u)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (req.Page - 1) * req.Limit
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, userID uuid.UUID, role user.Role) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.Role = role
	r.store.users[userID] = u
	return &u, nil
}

func (r *memUserRepo) UpdateStatus(_ context.Context, userID uuid.UUID, isActive bool) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.IsActive = isActive
	r.store.users[userID] = u
	return &u, nil
}

func (r *memUserRepo) DeleteWithContent(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[userID]; !ok {
		return user.ErrUserNotFound
	}

	authoredBlogs := make(map[uuid.UUID]bool)
	for id, b := range r.store.blogs {
		if b.AuthorID == userID {
			authoredBlogs[id] = true
		}
	}
	for id, cm := range r.store.comments {
		if cm.AuthorID == userID || authoredBlogs[cm.BlogID] {
			delete(r.store.comments, id)
		}
	}
	for id := range authoredBlogs {
		delete(r.store.blogs, id)
		delete(r.store.blogLikes, id)
		delete(r.store.blogBookmarks, id)
	}
	delete(r.store.users, userID)

	return nil
}

// ---- blog.Repository ----

type memBlogRepo struct{ store *memStore }

func (r *memBlogRepo) Create(_ context.Context, b *blog.Blog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.blogs[b.ID] = *b
	return nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.blogs[id]
	if !ok {
		return nil, blog.ErrBlogNotFound
	}
	return &b, nil
}

func (r *memBlogRepo) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*blog.BlogWithRefs, error) {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.withRefs(*b), nil
}

func (r *memBlogRepo) withRefs(b blog.Blog) *blog.BlogWithRefs {
	out := &blog.BlogWithRefs{Blog: b}
	if author, ok := r.store.users[b.AuthorID]; ok {
		out.Author = blog.AuthorRef{ID: author.ID, Username: author.Username, Email: author.Email}
	}
	if b.CategoryID != nil {
		if cat, ok := r.store.categories[*b.CategoryID]; ok {
			out.Category = &blog.CategoryRef{ID: cat.ID, Name: cat.Name}
		}
	}
	for _, cm := range r.store.comments {
		if cm.BlogID == b.ID {
			out.CommentCount++
		}
	}
	out.LikeCount = len(r.store.blogLikes[b.ID])
	return out
}

func (r *memBlogRepo) List(_ context.Context, req blog.ListBlogsRequest) ([]blog.BlogWithRefs, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make([]blog.Blog, 0, len(r.store.blogs))
	for _, b := range r.store.blogs {
		all = append(all, b)
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

	page := make([]blog.BlogWithRefs, 0, end-start)
	for _, b := range all[start:end] {
		page = append(page, *r.withRefs(b))
	}
	return page, total, nil
}

func (r *memBlogRepo) Update(_ context.Context, b *blog.Blog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.blogs[b.ID]; !ok {
		return blog.ErrBlogNotFound
	}
	r.store.blogs[b.ID] = *b
	return nil
}

func (r *memBlogRepo) DeleteWithComments(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.blogs[id]; !ok {
		return blog.ErrBlogNotFound
	}
	for cmID, cm := range r.store.comments {
		if cm.BlogID == id {
			delete(r.store.comments, cmID)
		}
	}
	delete(r.store.blogs, id)
	delete(r.store.blogLikes, id)
	delete(r.store.blogBookmarks, id)
	return nil
}

func (r *memBlogRepo) ToggleLike(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	likes := r.store.blogLikes[blogID]
	if likes == nil {
		likes = make(map[uuid.UUID]bool)
		r.store.blogLikes[blogID] = likes
	}
	if likes[userID] {
		delete(likes, userID)
		return false, nil
	}
	likes[userID] = true
	return true, nil
}

func (r *memBlogRepo) LikeCount(_ context.Context, blogID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.blogLikes[blogID]), nil
}

func (r *memBlogRepo) HasLiked(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.blogLikes[blogID][userID], nil
}

func (r *memBlogRepo) ToggleBookmark(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bookmarks := r.store.blogBookmarks[blogID]
	if bookmarks == nil {
		bookmarks = make(map[uuid.UUID]bool)
		r.store.blogBookmarks[blogID] = bookmarks
	}
	if bookmarks[userID] {
		delete(bookmarks, userID)
		return false, nil
	}
	bookmarks[userID] = true
	return true, nil
}

// ---- category.Repository ----

type memCategoryRepo struct{ store *memStore }

func (r *memCategoryRepo) Create(_ context.Context, c *category.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *memCategoryRepo) FindAll(_ context.Context) ([]category.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]category.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *category.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	r.store.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) DeleteWithUnset(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	for blogID, b := range r.store.blogs {
		if b.CategoryID != nil && *b.CategoryID == id {
			b.CategoryID = nil
			r.store.blogs[blogID] = b
		}
	}
	delete(r.store.categories, id)
	return nil
}

// ---- admin.StatsRepository ----

type memStatsRepo struct{ store *memStore }

var _ admin.StatsRepository = (*memStatsRepo)(nil)

func (r *memStatsRepo) CountUsers(context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.users), nil
}

func (r *memStatsRepo) CountBlogs(context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.blogs), nil
}

func (r *memStatsRepo) CountComments(context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.comments), nil
}

func (r *memStatsRepo) CountCategories(context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.categories), nil
}

func (r *memStatsRepo) UserRoleStats(context.Context) (user.RoleStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var stats user.RoleStats
	for _, u := range r.store.users {
		if u.Role != user.RoleUser {
			continue
		}
		stats.TotalUsers++
		if u.IsActive {
			stats.ActiveUsers++
		}
	}
	return stats, nil
}

func (r *memStatsRepo) BlogStats(context.Context) (blog.BlogStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return blog.BlogStats{
		TotalBlogs:    len(r.store.blogs),
		TotalComments: len(r.store.comments),
	}, nil
}

// ---- cache.Cache ----

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) DeletePattern(context.Context, string) error { return nil }

func (c *memCache) Ping(context.Context) error { return nil }

// containsFold matches the ILIKE '%term%' behavior of the postgres repository.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

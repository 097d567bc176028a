package admin

import (
	"blog-backend/internal/domains/blog"
	"blog-backend/internal/domains/user"
)

// DashboardStats is the aggregate returned by GET /admin/dashboard/stats.
// The two grouped sub-results are zero-valued when nothing matches.
type DashboardStats struct {
	Users      int            `json:"users"`
	Blogs      int            `json:"blogs"`
	Comments   int            `json:"comments"`
	Categories int            `json:"categories"`
	UserStats  user.RoleStats `json:"userStats"`
	BlogStats  blog.BlogStats `json:"blogStats"`
}

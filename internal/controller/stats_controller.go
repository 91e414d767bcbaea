package controller

import (
	"github.com/gofiber/fiber/v2"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

type DashboardStats struct {
	TotalBlogs     int64                     `json:"total_blogs"`
	PublishedBlogs int64                     `json:"published_blogs"`
	TotalBooks     int64                     `json:"total_books"`
	PublishedBooks int64                     `json:"published_books"`
	TotalContacts  int64                     `json:"total_contacts"`
	TotalMedia     int64                     `json:"total_media"`
	ActiveSponsors int64                     `json:"active_sponsors"`
	TotalClicks    int64                     `json:"total_clicks"`
	TopSponsors    []model.Sponsor           `json:"top_sponsors"`
	RecentContacts []model.ContactSubmission `json:"recent_contacts"`
}

// GetDashboardStats aggregates the admin dashboard numbers.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats DashboardStats

	db.Model(&model.Blog{}).Count(&stats.TotalBlogs)
	db.Model(&model.Blog{}).Where("is_published = ?", true).Count(&stats.PublishedBlogs)

	db.Model(&model.Book{}).Count(&stats.TotalBooks)
	db.Model(&model.Book{}).Where("is_published = ?", true).Count(&stats.PublishedBooks)

	db.Model(&model.ContactSubmission{}).Count(&stats.TotalContacts)
	db.Model(&model.Media{}).Count(&stats.TotalMedia)

	db.Model(&model.Sponsor{}).Where("is_active = ?", true).Count(&stats.ActiveSponsors)

	var totalClicks struct {
		Total int64
	}
	db.Model(&model.Sponsor{}).Select("COALESCE(SUM(click_count), 0) as total").Scan(&totalClicks)
	stats.TotalClicks = totalClicks.Total

	db.Model(&model.Sponsor{}).
		Where("is_active = ?", true).
		Order("click_count desc").
		Limit(5).
		Find(&stats.TopSponsors)

	db.Model(&model.ContactSubmission{}).
		Order("created_at desc").
		Limit(5).
		Find(&stats.RecentContacts)

	return c.JSON(stats)
}

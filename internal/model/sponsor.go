package model

import "gorm.io/gorm"

type Sponsor struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	LogoURL      string `json:"logo_url"`
	WebsiteURL   string `json:"website_url"`
	Description  string `json:"description" gorm:"type:text"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
	// ClickCount only ever increases, through an atomic column update.
	ClickCount int64 `json:"click_count" gorm:"default:0"`
}

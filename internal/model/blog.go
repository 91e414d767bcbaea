package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio_backend/pkg/utils/slugify"
)

type Blog struct {
	gorm.Model
	Title         string         `json:"title" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt       string         `json:"excerpt" gorm:"type:text"`
	Content       string         `json:"content" gorm:"type:text"`
	CoverImageURL string         `json:"cover_image_url"`
	MetaTitle     string         `json:"meta_title"`
	MetaDesc      string         `json:"meta_description" gorm:"type:text"`
	MetaKeywords  datatypes.JSON `json:"meta_keywords"`
	IsPublished   bool           `json:"is_published" gorm:"default:false"`
	PublishedAt   *time.Time     `json:"published_at"`
	AuthorID      uint           `json:"author_id" gorm:"index"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate derives the slug from the title when none was supplied and
// makes sure it stays unique, then stamps PublishedAt for posts created
// already published.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		slug := slugify.Make(b.Title)

		var count int64
		tx.Model(&Blog{}).Where("slug = ?", slug).Count(&count)
		if count > 0 {
			slug = slug + "-" + time.Now().Format("20060102150405")
		}

		b.Slug = slug
	}

	if b.IsPublished && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}

	return nil
}

package model

import "gorm.io/gorm"

type Media struct {
	gorm.Model
	Filename     string `json:"filename" gorm:"not null"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type" gorm:"index"`
	Size         int64  `json:"size"`
	URL          string `json:"url" gorm:"not null"`
	AltText      string `json:"alt_text"`
	UploadedBy   uint   `json:"uploaded_by" gorm:"index"`

	// Relations
	Uploader User `json:"-" gorm:"foreignKey:UploadedBy"`
}

package model

import "gorm.io/gorm"

type Book struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Author      string `json:"author" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	CoverURL    string `json:"cover_url"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"` // pdf, epub
	Category    string `json:"category" gorm:"index"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
}

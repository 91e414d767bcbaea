package model

import "gorm.io/gorm"

// ContactSubmission is append-only: the API offers create and list, never
// update or delete.
type ContactSubmission struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text;not null"`
}

package model

import "time"

type LoginHistory struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Device    string    `gorm:"size:255"` // User-Agent string
	IP        string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

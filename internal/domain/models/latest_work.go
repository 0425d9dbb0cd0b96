package models

import "time"

// LatestWork represents an entry in the "latest works" portfolio list
type LatestWork struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Link      string    `gorm:"type:varchar(500)" json:"link"`
	Thumbnail string    `gorm:"type:varchar(500)" json:"thumbnail"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

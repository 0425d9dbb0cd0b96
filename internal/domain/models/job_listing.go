package models

import "time"

// JobListing represents an open position advertised on the site.
// Requirements keeps its order and is stored as a JSON column.
type JobListing struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements []string  `gorm:"serializer:json;type:text" json:"requirements"`
	Type         string    `gorm:"type:varchar(50)" json:"type"`
	Icon         string    `gorm:"type:varchar(50);default:Users" json:"icon"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

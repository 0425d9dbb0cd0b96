package models

import "time"

// Contact represents a contact-form inquiry. Records are never deleted; the
// only mutation after creation is flipping IsSolved.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	IsSolved  bool      `gorm:"not null;default:false" json:"is_solved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

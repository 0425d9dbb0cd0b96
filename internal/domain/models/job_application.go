package models

import "time"

// Job application statuses. Pending is the initial state; approved and
// rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// JobApplication represents a submitted application for a job listing.
// JobID references a listing by value only; no foreign key is enforced and a
// dangling reference is accepted.
type JobApplication struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	JobID      uint      `gorm:"not null" json:"job_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(30);not null" json:"phone"`
	Experience string    `gorm:"type:text" json:"experience"`
	Address    string    `gorm:"type:varchar(300)" json:"address,omitempty"`
	Resume     string    `gorm:"type:varchar(500)" json:"resume,omitempty"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	AppliedAt  time.Time `json:"applied_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

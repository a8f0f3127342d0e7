package domain

import "time"

// Notification types used by the workflow side effects.
const (
	NotificationInfo           = "info"
	NotificationActionRequired = "action_required"
)

// Notification is addressed to a candidate profile and optionally references
// the application it concerns.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidateID   uint      `gorm:"not null;index" json:"candidate_id"`
	ApplicationID *uint     `gorm:"index" json:"application_id"`
	Type          string    `gorm:"size:32;not null;default:info" json:"type"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	IsRead        bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "candidate_notifications" }

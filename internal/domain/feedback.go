package domain

import "time"

// Feedback is write-once: at most one row per interview, authored by the
// interview's assigned interviewer.
type Feedback struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	InterviewID    uint      `gorm:"not null;uniqueIndex" json:"interview_id"`
	InterviewerID  uint      `gorm:"not null;index" json:"interviewer_id"`
	Rating         *float64  `json:"rating"`
	Comments       string    `gorm:"type:text" json:"comments"`
	Recommendation string    `gorm:"size:64" json:"recommendation"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string { return "interview_feedback" }

package domain

import "time"

// Candidate is the one-to-one profile of a user with the candidate role.
// It is created explicitly, not on registration; applying to a job requires
// one to exist.
type Candidate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Phone           string    `gorm:"size:32" json:"phone"`
	Skills          string    `gorm:"type:text" json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	ResumePath      string    `gorm:"size:255" json:"resume_path"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Candidate) TableName() string { return "candidates" }

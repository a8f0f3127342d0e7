package domain

import "time"

// Company owns zero or more jobs.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Industry  string    `gorm:"size:128" json:"industry"`
	Location  string    `gorm:"size:128" json:"location"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Company) TableName() string { return "companies" }

package domain

import "time"

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (AuditLog) TableName() string { return "audit_logs" }

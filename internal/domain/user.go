package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Unknown values are rejected at
// the boundary via ParseRole.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHR          Role = "hr"
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleHR, RoleInterviewer, RoleCandidate:
		return r, nil
	}
	return "", Validation(fmt.Sprintf("unknown role %q", s))
}

// UserStatus is the account lifecycle state, distinct from the IsActive flag
// (deactivation clears IsActive and sets StatusInactive together).
type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

func ParseUserStatus(s string) (UserStatus, error) {
	st := UserStatus(s)
	switch st {
	case StatusPending, StatusActive, StatusInactive:
		return st, nil
	}
	return "", Validation(fmt.Sprintf("unknown user status %q", s))
}

// User is an account of any role. TokenVersion is bumped on every
// security-relevant change (password change, role change, deactivation) so
// that previously issued tokens stop passing the freshness check.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:64;not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Role         Role       `gorm:"size:16;not null" json:"role"`
	Status       UserStatus `gorm:"size:16;not null;default:pending" json:"status"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	TokenVersion int        `gorm:"not null;default:1" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated caller as decoded from an access token.
// IP is the request origin, recorded on audit entries.
type Actor struct {
	UserID       uint
	Role         Role
	TokenVersion int
	IP           string
}

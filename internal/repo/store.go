// Package repo is the persistence layer: one thin gorm repository per
// entity, aggregated by Store. Services never touch *gorm.DB directly; the
// Store's Atomically is the unit-of-work boundary every workflow operation
// commits through.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type Store struct {
	db *gorm.DB

	Users         UserRepo
	Candidates    CandidateRepo
	Companies     CompanyRepo
	Jobs          JobRepo
	Applications  ApplicationRepo
	Interviews    InterviewRepo
	Feedback      FeedbackRepo
	Notifications NotificationRepo
	Audit         AuditRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         UserRepo{db},
		Candidates:    CandidateRepo{db},
		Companies:     CompanyRepo{db},
		Jobs:          JobRepo{db},
		Applications:  ApplicationRepo{db},
		Interviews:    InterviewRepo{db},
		Feedback:      FeedbackRepo{db},
		Notifications: NotificationRepo{db},
		Audit:         AuditRepo{db},
	}
}

// Atomically runs fn against a store bound to a single transaction. Either
// every write inside fn commits, or none do.
func (s *Store) Atomically(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&domain.User{},
		&domain.Candidate{},
		&domain.Company{},
		&domain.Job{},
		&domain.Application{},
		&domain.Interview{},
		&domain.Feedback{},
		&domain.Notification{},
		&domain.AuditLog{},
	)
}

// isDuplicate detects unique-constraint violations without depending on
// driver-specific error types (message check covers mysql, postgres and
// sqlite wordings).
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

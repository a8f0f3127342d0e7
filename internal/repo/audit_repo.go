package repo

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type AuditRepo struct{ db *gorm.DB }

// Append is the only write path; audit rows are never updated or deleted.
func (r AuditRepo) Append(ctx context.Context, e *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r AuditRepo) ListNewestFirst(ctx context.Context) ([]domain.AuditLog, error) {
	var entries []domain.AuditLog
	err := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&entries).Error
	return entries, err
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type NotificationRepo struct{ db *gorm.DB }

func (r NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r NotificationRepo) ListByCandidate(ctx context.Context, candidateID uint) ([]domain.Notification, error) {
	var ns []domain.Notification
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).
		Order("created_at DESC").Find(&ns).Error
	return ns, err
}

// ByIDForCandidate scopes the lookup to the owning candidate so callers
// cannot read or mark another candidate's notifications.
func (r NotificationRepo) ByIDForCandidate(ctx context.Context, id, candidateID uint) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.WithContext(ctx).
		First(&n, "id = ? AND candidate_id = ?", id, candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("notification not found")
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r NotificationRepo) Update(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

package service

import (
	"context"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type NotificationService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewNotificationService(store *repo.Store, log *zap.Logger) *NotificationService {
	return &NotificationService{store: store, log: log}
}

// ListMine returns the caller's notifications, newest first. A candidate
// without a profile simply has none yet.
func (s *NotificationService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	u, err := freshActorUser(ctx, s.store, actor)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}
	cand, err := s.store.Candidates.ByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return []domain.Notification{}, nil
	}
	return s.store.Notifications.ListByCandidate(ctx, cand.ID)
}

// MarkRead flags one of the caller's own notifications as read. A
// notification belonging to another candidate is indistinguishable from a
// missing one.
func (s *NotificationService) MarkRead(ctx context.Context, actor domain.Actor, id uint) (*domain.Notification, error) {
	var out *domain.Notification
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		u, err := freshActorUser(ctx, tx, actor)
		if err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleCandidate); err != nil {
			return err
		}
		cand, err := tx.Candidates.ByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		if cand == nil {
			return domain.NotFound("notification not found")
		}
		n, err := tx.Notifications.ByIDForCandidate(ctx, id, cand.ID)
		if err != nil {
			return err
		}
		n.IsRead = true
		if err := tx.Notifications.Update(ctx, n); err != nil {
			return err
		}
		out = n
		return nil
	})
	return out, err
}

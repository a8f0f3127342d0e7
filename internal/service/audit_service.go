package service

import (
	"context"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type AuditService struct {
	store *repo.Store
}

func NewAuditService(store *repo.Store) *AuditService {
	return &AuditService{store: store}
}

// List is admin-only, newest entries first.
func (s *AuditService) List(ctx context.Context, actor domain.Actor) ([]domain.AuditLog, error) {
	if _, err := freshActorUser(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.Audit.ListNewestFirst(ctx)
}

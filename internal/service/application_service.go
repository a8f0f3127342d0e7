package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type ApplicationService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewApplicationService(store *repo.Store, log *zap.Logger) *ApplicationService {
	return &ApplicationService{store: store, log: log}
}

// Apply submits the caller's candidacy for an open job. The application row
// and the confirmation notification commit together.
func (s *ApplicationService) Apply(ctx context.Context, actor domain.Actor, jobID uint) (*domain.Application, error) {
	var out *domain.Application
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
			return domain.Conflict("candidate profile not found")
		}

		job, err := tx.Jobs.ByID(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Status != domain.JobOpen {
			return domain.InvalidState("only open jobs accept applications")
		}

		dup, err := tx.Applications.ExistsForCandidateJob(ctx, cand.ID, jobID)
		if err != nil {
			return err
		}
		if dup {
			return domain.Conflict("duplicate application not allowed")
		}

		app := &domain.Application{
			CandidateID: cand.ID,
			JobID:       jobID,
			Status:      domain.ApplicationApplied,
		}
		if err := tx.Applications.Create(ctx, app); err != nil {
			return err
		}
		if err := tx.Notifications.Create(ctx, &domain.Notification{
			CandidateID:   cand.ID,
			ApplicationID: &app.ID,
			Type:          domain.NotificationInfo,
			Message:       "Application submitted",
		}); err != nil {
			return err
		}
		out = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("application submitted", zap.Uint("application_id", out.ID), zap.Uint("job_id", jobID))
	return out, nil
}

// List scopes results by the caller's stored role: admins see everything,
// candidates their own, HR users the applications for jobs they own, anyone
// else nothing.
func (s *ApplicationService) List(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	u, err := freshActorUser(ctx, s.store, actor)
	if err != nil {
		return nil, err
	}

	switch u.Role {
	case domain.RoleAdmin:
		return s.store.Applications.ListAll(ctx)
	case domain.RoleCandidate:
		cand, err := s.store.Candidates.ByUserID(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			return []domain.Application{}, nil
		}
		return s.store.Applications.ListByCandidate(ctx, cand.ID)
	case domain.RoleHR:
		return s.store.Applications.ListByJobOwner(ctx, u.ID)
	default:
		return []domain.Application{}, nil
	}
}

// UpdateState moves one application along its lifecycle and notifies the
// candidate in the same transaction.
func (s *ApplicationService) UpdateState(ctx context.Context, actor domain.Actor, appID uint, to domain.ApplicationStatus) (*domain.Application, error) {
	var out *domain.Application
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleHR, domain.RoleAdmin); err != nil {
			return err
		}
		app, err := tx.Applications.ByID(ctx, appID)
		if err != nil {
			return err
		}
		job, err := tx.Jobs.ByID(ctx, app.JobID)
		if err != nil {
			return err
		}
		if err := RequireOwnerOrAdmin(actor, job.OwnerHRID); err != nil {
			return err
		}
		if err := app.TransitionTo(to); err != nil {
			return err
		}
		if err := tx.Applications.Update(ctx, app); err != nil {
			return err
		}
		if err := tx.Notifications.Create(ctx, &domain.Notification{
			CandidateID:   app.CandidateID,
			ApplicationID: &app.ID,
			Type:          domain.NotificationActionRequired,
			Message:       fmt.Sprintf("Application moved to %s", to),
		}); err != nil {
			return err
		}
		out = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("application state updated",
		zap.Uint("application_id", appID), zap.String("status", string(to)))
	return out, nil
}

type BulkFailure struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

type BulkResult struct {
	Attempted int           `json:"attempted"`
	Updated   int           `json:"updated"`
	Failed    []BulkFailure `json:"failed,omitempty"`
}

// BulkUpdateState applies UpdateState per id, in order. Each id is its own
// transaction: one failure neither rolls back earlier successes nor stops
// later ids. This batch is non-atomic by design.
func (s *ApplicationService) BulkUpdateState(ctx context.Context, actor domain.Actor, ids []uint, to domain.ApplicationStatus) BulkResult {
	res := BulkResult{Attempted: len(ids)}
	for _, id := range ids {
		if _, err := s.UpdateState(ctx, actor, id, to); err != nil {
			res.Failed = append(res.Failed, BulkFailure{ID: id, Reason: err.Error()})
			continue
		}
		res.Updated++
	}
	return res
}

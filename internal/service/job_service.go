package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobtrack/internal/core/cache"
	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

// analyticsTTL bounds how stale the cached per-job counters may get.
const analyticsTTL = 30 * time.Second

type JobService struct {
	store *repo.Store
	cache *cache.Cache // nil disables caching
	log   *zap.Logger
}

func NewJobService(store *repo.Store, c *cache.Cache, log *zap.Logger) *JobService {
	return &JobService{store: store, cache: c, log: log}
}

type CreateJobInput struct {
	CompanyID          uint
	Title              string
	Description        string
	Department         string
	ExperienceRequired int
}

// Create posts a draft job owned by the acting HR user.
func (s *JobService) Create(ctx context.Context, actor domain.Actor, in CreateJobInput) (*domain.Job, error) {
	u, err := freshActorUser(ctx, s.store, actor)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleHR, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.store.Companies.ByID(ctx, in.CompanyID); err != nil {
		return nil, err
	}

	owner := u.ID
	j := &domain.Job{
		CompanyID:          in.CompanyID,
		OwnerHRID:          &owner,
		Title:              in.Title,
		Description:        in.Description,
		Department:         in.Department,
		ExperienceRequired: in.ExperienceRequired,
		Status:             domain.JobDraft,
	}
	if err := s.store.Jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	s.log.Info("job created", zap.Uint("job_id", j.ID), zap.Uint("owner_hr_id", owner))
	return j, nil
}

// Get is unauthenticated: postings are public.
func (s *JobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	return s.store.Jobs.ByID(ctx, id)
}

type JobPage struct {
	Total int64
	Items []domain.Job
}

// ListOpen is the public job board.
func (s *JobService) ListOpen(ctx context.Context, companyID uint, page, size int) (JobPage, error) {
	page, size = normalizePage(page, size)
	items, total, err := s.store.Jobs.ListOpen(ctx, companyID, (page-1)*size, size)
	if err != nil {
		return JobPage{}, err
	}
	return JobPage{Total: total, Items: items}, nil
}

// UpdateState moves the job along its lifecycle. The transition is
// re-validated against the stored status inside the transaction, so a
// concurrent writer that commits first wins and this call fails cleanly.
func (s *JobService) UpdateState(ctx context.Context, actor domain.Actor, jobID uint, toRaw string) (*domain.Job, error) {
	to, err := domain.ParseJobStatus(toRaw)
	if err != nil {
		return nil, err
	}
	var out *domain.Job
	err = s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		j, err := tx.Jobs.ByID(ctx, jobID)
		if err != nil {
			return err
		}
		if err := RequireOwnerOrAdmin(actor, j.OwnerHRID); err != nil {
			return err
		}
		if err := j.TransitionTo(to); err != nil {
			return err
		}
		if err := tx.Jobs.Update(ctx, j); err != nil {
			return err
		}
		out = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("job state updated", zap.Uint("job_id", jobID), zap.String("status", toRaw))
	return out, nil
}

type JobAnalytics struct {
	JobID        uint  `json:"job_id"`
	Applications int64 `json:"applications"`
	Interviews   int64 `json:"interviews"`
}

// Analytics returns per-job application and interview counts, served through
// the read-through cache when one is configured.
func (s *JobService) Analytics(ctx context.Context, actor domain.Actor, jobID uint) (*JobAnalytics, error) {
	if _, err := freshActorUser(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleHR, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.store.Jobs.ByID(ctx, jobID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("job:%d:analytics", jobID)
	return cache.GetOrLoadJSON(s.cache, ctx, key, analyticsTTL, func(ctx context.Context) (*JobAnalytics, error) {
		apps, err := s.store.Applications.CountByJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		interviews, err := s.store.Interviews.CountByJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		return &JobAnalytics{JobID: jobID, Applications: apps, Interviews: interviews}, nil
	})
}

package service

import (
	"context"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type CandidateService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewCandidateService(store *repo.Store, log *zap.Logger) *CandidateService {
	return &CandidateService{store: store, log: log}
}

type CandidateInput struct {
	Phone           string
	Skills          string
	ExperienceYears int
	ResumePath      string
}

// CreateProfile creates the caller's one-to-one candidate profile. Profiles
// are never created implicitly on registration.
func (s *CandidateService) CreateProfile(ctx context.Context, actor domain.Actor, in CandidateInput) (*domain.Candidate, error) {
	u, err := freshActorUser(ctx, s.store, actor)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}

	c := &domain.Candidate{
		UserID:          u.ID,
		Phone:           in.Phone,
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		ResumePath:      in.ResumePath,
	}
	if err := s.store.Candidates.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("candidate profile created", zap.Uint("user_id", u.ID), zap.Uint("candidate_id", c.ID))
	return c, nil
}

func (s *CandidateService) MyProfile(ctx context.Context, actor domain.Actor) (*domain.Candidate, error) {
	u, err := freshActorUser(ctx, s.store, actor)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}
	c, err := s.store.Candidates.ByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("candidate profile not found")
	}
	return c, nil
}

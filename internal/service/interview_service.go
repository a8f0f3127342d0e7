package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type InterviewService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewInterviewService(store *repo.Store, log *zap.Logger) *InterviewService {
	return &InterviewService{store: store, log: log}
}

type ScheduleInterviewInput struct {
	ApplicationID uint
	InterviewerID uint
	ScheduledAt   time.Time
	Type          string
}

// Schedule books an interview for an application. As a documented exception
// to the transition discipline, the parent application is forced into
// interview_scheduled directly; interview row, application update and the
// candidate notification commit together.
func (s *InterviewService) Schedule(ctx context.Context, actor domain.Actor, in ScheduleInterviewInput) (*domain.Interview, error) {
	var out *domain.Interview
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleHR, domain.RoleAdmin); err != nil {
			return err
		}
		app, err := tx.Applications.ByID(ctx, in.ApplicationID)
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
		if _, err := tx.Users.ByID(ctx, in.InterviewerID); err != nil {
			return domain.NotFound("interviewer not found")
		}

		busy, err := tx.Interviews.HasCalendarConflict(ctx, in.InterviewerID, in.ScheduledAt)
		if err != nil {
			return err
		}
		if busy {
			return domain.Conflict("interviewer has a calendar conflict")
		}

		iv := &domain.Interview{
			ApplicationID: app.ID,
			InterviewerID: in.InterviewerID,
			ScheduledAt:   in.ScheduledAt,
			Type:          in.Type,
			Status:        domain.InterviewScheduled,
		}
		if err := tx.Interviews.Create(ctx, iv); err != nil {
			return err
		}

		app.MarkInterviewScheduled()
		if err := tx.Applications.Update(ctx, app); err != nil {
			return err
		}
		if err := tx.Notifications.Create(ctx, &domain.Notification{
			CandidateID:   app.CandidateID,
			ApplicationID: &app.ID,
			Type:          domain.NotificationInfo,
			Message:       "Interview scheduled",
		}); err != nil {
			return err
		}
		out = iv
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("interview scheduled",
		zap.Uint("interview_id", out.ID),
		zap.Uint("application_id", in.ApplicationID),
		zap.Uint("interviewer_id", in.InterviewerID))
	return out, nil
}

type UpdateInterviewInput struct {
	ScheduledAt *time.Time
	Type        *string
	Status      *string
}

// Update lets any authenticated user with a fresh token reschedule, retype or
// move the interview's status; a status change goes through the transition
// table, while date and type may change independently.
func (s *InterviewService) Update(ctx context.Context, actor domain.Actor, id uint, in UpdateInterviewInput) (*domain.Interview, error) {
	var out *domain.Interview
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		iv, err := tx.Interviews.ByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Status != nil {
			to, err := domain.ParseInterviewStatus(*in.Status)
			if err != nil {
				return err
			}
			if err := iv.TransitionTo(to); err != nil {
				return err
			}
		}
		if in.ScheduledAt != nil {
			iv.ScheduledAt = *in.ScheduledAt
		}
		if in.Type != nil {
			iv.Type = *in.Type
		}

		if err := tx.Interviews.Update(ctx, iv); err != nil {
			return err
		}
		out = iv
		return nil
	})
	return out, err
}

type FeedbackInput struct {
	InterviewID    uint
	Rating         *float64
	Comments       string
	Recommendation string
}

// SubmitFeedback is write-once and restricted to the interview's assigned
// interviewer.
func (s *InterviewService) SubmitFeedback(ctx context.Context, actor domain.Actor, in FeedbackInput) (*domain.Feedback, error) {
	var out *domain.Feedback
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		u, err := freshActorUser(ctx, tx, actor)
		if err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleInterviewer); err != nil {
			return err
		}
		iv, err := tx.Interviews.ByID(ctx, in.InterviewID)
		if err != nil {
			return err
		}
		if iv.InterviewerID != u.ID {
			return domain.PermissionDenied("only the assigned interviewer can submit feedback")
		}

		exists, err := tx.Feedback.ExistsForInterview(ctx, iv.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("feedback already submitted for this interview")
		}

		fb := &domain.Feedback{
			InterviewID:    iv.ID,
			InterviewerID:  u.ID,
			Rating:         in.Rating,
			Comments:       in.Comments,
			Recommendation: in.Recommendation,
		}
		if err := tx.Feedback.Create(ctx, fb); err != nil {
			return err
		}
		out = fb
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("feedback submitted", zap.Uint("interview_id", in.InterviewID))
	return out, nil
}

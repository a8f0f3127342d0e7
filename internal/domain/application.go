package domain

import (
	"fmt"
	"time"
)

// ApplicationStatus values mirror the application_status column.
//
// Valid status graph:
//
//	applied ──► shortlisted ──► interview_scheduled ──► hired
//	   │             │                   │
//	   └─────────────┴───────────────────┴──► rejected
//
// hired and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationApplied            ApplicationStatus = "applied"
	ApplicationShortlisted        ApplicationStatus = "shortlisted"
	ApplicationInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationRejected           ApplicationStatus = "rejected"
	ApplicationHired              ApplicationStatus = "hired"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:            {ApplicationShortlisted, ApplicationRejected},
	ApplicationShortlisted:        {ApplicationInterviewScheduled, ApplicationRejected},
	ApplicationInterviewScheduled: {ApplicationHired, ApplicationRejected},
	// hired and rejected are terminal — no outgoing transitions
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationApplied, ApplicationShortlisted, ApplicationInterviewScheduled,
		ApplicationRejected, ApplicationHired:
		return st, nil
	}
	return "", Validation(fmt.Sprintf("unknown application status %q", s))
}

func (s ApplicationStatus) CanTransitionTo(to ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Application links one candidate to one job. The (candidate, job) pair is
// unique: a candidate applies to a given job at most once.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CandidateID uint              `gorm:"not null;uniqueIndex:idx_candidate_job" json:"candidate_id"`
	JobID       uint              `gorm:"not null;uniqueIndex:idx_candidate_job;index" json:"job_id"`
	Status      ApplicationStatus `gorm:"size:32;not null;default:applied" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	LastUpdated time.Time         `gorm:"autoUpdateTime" json:"last_updated"`
}

func (Application) TableName() string { return "applications" }

// TransitionTo is the only sanctioned way to change an application's status.
func (a *Application) TransitionTo(to ApplicationStatus) error {
	if !a.Status.CanTransitionTo(to) {
		return InvalidTransition("application", string(a.Status), string(to))
	}
	a.Status = to
	return nil
}

// MarkInterviewScheduled sets the status directly, bypassing the transition
// table. This is the single sanctioned exception to the transition
// discipline: scheduling an interview forces the parent application into
// interview_scheduled regardless of its current non-terminal state.
func (a *Application) MarkInterviewScheduled() {
	a.Status = ApplicationInterviewScheduled
}

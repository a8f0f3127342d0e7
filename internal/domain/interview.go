package domain

import (
	"fmt"
	"time"
)

// InterviewStatus values mirror the interview_status column.
//
// Valid status graph:
//
//	scheduled ──► rescheduled ──► completed
//	    │              │
//	    ├──────────────┴──► cancelled
//	    └──► completed
//
// completed and cancelled are terminal.
type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewRescheduled InterviewStatus = "rescheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
)

var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewScheduled:   {InterviewRescheduled, InterviewCompleted, InterviewCancelled},
	InterviewRescheduled: {InterviewCompleted, InterviewCancelled},
	// completed and cancelled are terminal — no outgoing transitions
}

func ParseInterviewStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(s)
	switch st {
	case InterviewScheduled, InterviewRescheduled, InterviewCompleted, InterviewCancelled:
		return st, nil
	}
	return "", Validation(fmt.Sprintf("unknown interview status %q", s))
}

func (s InterviewStatus) CanTransitionTo(to InterviewStatus) bool {
	for _, allowed := range interviewTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the interview no longer blocks the interviewer's
// calendar slot.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewCompleted || s == InterviewCancelled
}

// Interview belongs to one application and is assigned to one interviewer.
// No two non-terminal interviews may share the same interviewer and exact
// scheduled time.
type Interview struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ApplicationID uint            `gorm:"not null;index" json:"application_id"`
	InterviewerID uint            `gorm:"not null;index" json:"interviewer_id"`
	ScheduledAt   time.Time       `gorm:"not null" json:"scheduled_at"`
	Type          string          `gorm:"size:64;not null" json:"type"`
	Status        InterviewStatus `gorm:"size:16;not null;default:scheduled" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Interview) TableName() string { return "interviews" }

// TransitionTo is the only sanctioned way to change an interview's status.
func (i *Interview) TransitionTo(to InterviewStatus) error {
	if !i.Status.CanTransitionTo(to) {
		return InvalidTransition("interview", string(i.Status), string(to))
	}
	i.Status = to
	return nil
}

package domain

import (
	"fmt"
	"time"
)

// JobStatus values mirror the job_status column.
//
// Valid status graph:
//
//	draft ──► open ──► closed ──► archived
//	  └──────────────────────────► archived
//
// archived is terminal.
type JobStatus string

const (
	JobDraft    JobStatus = "draft"
	JobOpen     JobStatus = "open"
	JobClosed   JobStatus = "closed"
	JobArchived JobStatus = "archived"
)

// jobTransitions lists every allowed (from → to) pair. Self-transitions are
// never allowed.
var jobTransitions = map[JobStatus][]JobStatus{
	JobDraft:  {JobOpen, JobArchived},
	JobOpen:   {JobClosed},
	JobClosed: {JobArchived},
	// archived is terminal — no outgoing transitions
}

func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobDraft, JobOpen, JobClosed, JobArchived:
		return st, nil
	}
	return "", Validation(fmt.Sprintf("unknown job status %q", s))
}

// CanTransitionTo returns true when moving to the given status is permitted
// by the state machine.
func (s JobStatus) CanTransitionTo(to JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Job is a posting owned by a company. OwnerHRID is the creating HR user and
// may be nil, in which case only admins may manage the job.
type Job struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CompanyID          uint      `gorm:"not null;index" json:"company_id"`
	OwnerHRID          *uint     `gorm:"index" json:"owner_hr_id"`
	Title              string    `gorm:"size:255;not null" json:"title"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	Department         string    `gorm:"size:128" json:"department"`
	ExperienceRequired int       `json:"experience_required"`
	Status             JobStatus `gorm:"size:16;not null;default:draft" json:"status"`
	PostedAt           time.Time `gorm:"autoCreateTime" json:"posted_at"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Job) TableName() string { return "jobs" }

// TransitionTo is the only sanctioned way to change a job's status.
func (j *Job) TransitionTo(to JobStatus) error {
	if !j.Status.CanTransitionTo(to) {
		return InvalidTransition("job", string(j.Status), string(to))
	}
	j.Status = to
	return nil
}

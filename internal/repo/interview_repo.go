package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type InterviewRepo struct{ db *gorm.DB }

func (r InterviewRepo) Create(ctx context.Context, i *domain.Interview) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r InterviewRepo) ByID(ctx context.Context, id uint) (*domain.Interview, error) {
	var i domain.Interview
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("interview not found")
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r InterviewRepo) Update(ctx context.Context, i *domain.Interview) error {
	return r.db.WithContext(ctx).Save(i).Error
}

// HasCalendarConflict reports whether the interviewer already has a
// non-terminal interview at exactly the given time.
func (r InterviewRepo) HasCalendarConflict(ctx context.Context, interviewerID uint, at time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Interview{}).
		Where("interviewer_id = ? AND scheduled_at = ?", interviewerID, at).
		Where("status IN ?", []domain.InterviewStatus{domain.InterviewScheduled, domain.InterviewRescheduled}).
		Count(&n).Error
	return n > 0, err
}

// CountByJob counts interviews reached through the job's applications.
func (r InterviewRepo) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Interview{}).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.job_id = ?", jobID).
		Count(&n).Error
	return n, err
}

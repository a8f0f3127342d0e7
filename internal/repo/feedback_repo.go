package repo

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type FeedbackRepo struct{ db *gorm.DB }

func (r FeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict("feedback already submitted for this interview")
		}
		return err
	}
	return nil
}

func (r FeedbackRepo) ExistsForInterview(ctx context.Context, interviewID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Feedback{}).
		Where("interview_id = ?", interviewID).Count(&n).Error
	return n > 0, err
}

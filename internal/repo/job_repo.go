package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func (r JobRepo) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r JobRepo) ByID(ctx context.Context, id uint) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("job not found")
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r JobRepo) Update(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

// ListOpen is the candidate-facing job board: open jobs only, optionally
// narrowed to one company.
func (r JobRepo) ListOpen(ctx context.Context, companyID uint, offset, limit int) ([]domain.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Job{}).Where("status = ?", domain.JobOpen)
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var jobs []domain.Job
	if err := q.Order("posted_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func (r ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict("duplicate application not allowed")
		}
		return err
	}
	return nil
}

func (r ApplicationRepo) ByID(ctx context.Context, id uint) (*domain.Application, error) {
	var a domain.Application
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("application not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r ApplicationRepo) Update(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r ApplicationRepo) ExistsForCandidateJob(ctx context.Context, candidateID, jobID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&n).Error
	return n > 0, err
}

func (r ApplicationRepo) ListAll(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).Order("id").Find(&apps).Error
	return apps, err
}

func (r ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Order("id").Find(&apps).Error
	return apps, err
}

// ListByJobOwner returns applications for jobs owned by the given HR user.
func (r ApplicationRepo) ListByJobOwner(ctx context.Context, hrUserID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.owner_hr_id = ?", hrUserID).
		Order("applications.id").
		Find(&apps).Error
	return apps, err
}

func (r ApplicationRepo) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("job_id = ?", jobID).Count(&n).Error
	return n, err
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type CandidateRepo struct{ db *gorm.DB }

func (r CandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict("candidate profile already exists")
		}
		return err
	}
	return nil
}

// ByUserID returns (nil, nil) when the user has no candidate profile.
func (r CandidateRepo) ByUserID(ctx context.Context, userID uint) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r CandidateRepo) ByID(ctx context.Context, id uint) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("candidate not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

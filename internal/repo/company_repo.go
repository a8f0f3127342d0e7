package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type CompanyRepo struct{ db *gorm.DB }

func (r CompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r CompanyRepo) ByID(ctx context.Context, id uint) (*domain.Company, error) {
	var c domain.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("company not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r CompanyRepo) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Company{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var companies []domain.Company
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

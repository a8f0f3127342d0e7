package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobtrack/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func (r UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict("email already registered")
		}
		return err
	}
	return nil
}

func (r UserRepo) ByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ByEmail returns (nil, nil) when no user carries the address; callers
// decide whether that is a failure.
func (r UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type UserFilter struct {
	Role   string
	Status string
	Offset int
	Limit  int
}

// List returns active users only, optionally narrowed by role and status.
func (r UserRepo) List(ctx context.Context, f UserFilter) ([]domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("is_active = ?", true)
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := q.Order("id").Offset(f.Offset).Limit(f.Limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r UserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict("email already registered")
		}
		return err
	}
	return nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type CompanyService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewCompanyService(store *repo.Store, log *zap.Logger) *CompanyService {
	return &CompanyService{store: store, log: log}
}

type CompanyInput struct {
	Name     string
	Industry string
	Location string
}

func (s *CompanyService) Create(ctx context.Context, actor domain.Actor, in CompanyInput) (*domain.Company, error) {
	if _, err := freshActorUser(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if err := RequireRole(actor, domain.RoleHR, domain.RoleAdmin); err != nil {
		return nil, err
	}
	c := &domain.Company{Name: in.Name, Industry: in.Industry, Location: in.Location}
	if err := s.store.Companies.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("company created", zap.Uint("company_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

type CompanyPage struct {
	Total int64
	Items []domain.Company
}

func (s *CompanyService) List(ctx context.Context, page, size int) (CompanyPage, error) {
	page, size = normalizePage(page, size)
	items, total, err := s.store.Companies.List(ctx, (page-1)*size, size)
	if err != nil {
		return CompanyPage{}, err
	}
	return CompanyPage{Total: total, Items: items}, nil
}

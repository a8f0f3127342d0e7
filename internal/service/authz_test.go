package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
)

func TestRequireRole(t *testing.T) {
	hr := domain.Actor{UserID: 1, Role: domain.RoleHR}
	assert.NoError(t, service.RequireRole(hr, domain.RoleHR, domain.RoleAdmin))
	assert.Error(t, service.RequireRole(hr, domain.RoleAdmin))
	assert.Error(t, service.RequireRole(hr, domain.RoleCandidate))
}

func TestRequireSelfOrAdmin(t *testing.T) {
	alice := domain.Actor{UserID: 1, Role: domain.RoleCandidate}
	admin := domain.Actor{UserID: 2, Role: domain.RoleAdmin}

	assert.NoError(t, service.RequireSelfOrAdmin(alice, 1))
	assert.Error(t, service.RequireSelfOrAdmin(alice, 2))
	assert.NoError(t, service.RequireSelfOrAdmin(admin, 1))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	owner := uint(7)
	hr := domain.Actor{UserID: 7, Role: domain.RoleHR}
	otherHR := domain.Actor{UserID: 8, Role: domain.RoleHR}
	admin := domain.Actor{UserID: 9, Role: domain.RoleAdmin}

	assert.NoError(t, service.RequireOwnerOrAdmin(hr, &owner))
	assert.Error(t, service.RequireOwnerOrAdmin(otherHR, &owner))
	assert.NoError(t, service.RequireOwnerOrAdmin(admin, &owner))

	// ownerless resources are admin-managed
	assert.Error(t, service.RequireOwnerOrAdmin(hr, nil))
	assert.NoError(t, service.RequireOwnerOrAdmin(admin, nil))
}

func TestRequireFresh(t *testing.T) {
	u := &domain.User{ID: 1, TokenVersion: 3}

	assert.NoError(t, service.RequireFresh(domain.Actor{UserID: 1, TokenVersion: 3}, u))

	err := service.RequireFresh(domain.Actor{UserID: 1, TokenVersion: 2}, u)
	assert.Error(t, err)
	assert.Equal(t, domain.KindCredentialStale, domain.KindOf(err))
}

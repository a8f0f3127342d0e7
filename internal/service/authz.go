// Package service holds the workflow orchestration: every public operation
// loads the affected entities, runs the authorization checks, validates
// state transitions and commits the mutation together with its audit and
// notification side effects in one store transaction.
package service

import (
	"context"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

// RequireRole fails with PermissionDenied unless the actor holds one of the
// allowed roles.
func RequireRole(a domain.Actor, allowed ...domain.Role) error {
	for _, r := range allowed {
		if a.Role == r {
			return nil
		}
	}
	return domain.PermissionDenied("insufficient permissions")
}

// RequireSelfOrAdmin permits admins and the target user itself.
func RequireSelfOrAdmin(a domain.Actor, targetUserID uint) error {
	if a.Role == domain.RoleAdmin || a.UserID == targetUserID {
		return nil
	}
	return domain.PermissionDenied("you can only manage your own profile")
}

// RequireOwnerOrAdmin permits admins and the owning user. A nil owner means
// the resource is admin-managed: non-admins are denied unconditionally.
func RequireOwnerOrAdmin(a domain.Actor, ownerUserID *uint) error {
	if a.Role == domain.RoleAdmin {
		return nil
	}
	if ownerUserID != nil && a.UserID == *ownerUserID {
		return nil
	}
	return domain.PermissionDenied("owner permission required")
}

// RequireFresh rejects tokens issued before the user's last security-relevant
// change (password change, role change, deactivation).
func RequireFresh(a domain.Actor, u *domain.User) error {
	if a.TokenVersion != u.TokenVersion {
		return domain.CredentialStale("token expired after security update")
	}
	return nil
}

// freshActorUser loads the actor's stored user and enforces the freshness
// check. Every operation goes through here before any role or ownership
// check, so a revoked user cannot act on an unexpired token.
func freshActorUser(ctx context.Context, st *repo.Store, a domain.Actor) (*domain.User, error) {
	u, err := st.Users.ByID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	if err := RequireFresh(a, u); err != nil {
		return nil, err
	}
	return u, nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
)

type UserService struct {
	store *repo.Store
	log   *zap.Logger
}

func NewUserService(store *repo.Store, log *zap.Logger) *UserService {
	return &UserService{store: store, log: log}
}

type ListUsersInput struct {
	Role     string
	Status   string
	Page     int
	PageSize int
}

type UserPage struct {
	Total int64
	Items []domain.User
}

// List is admin-only and covers active users only.
func (s *UserService) List(ctx context.Context, actor domain.Actor, in ListUsersInput) (UserPage, error) {
	if _, err := freshActorUser(ctx, s.store, actor); err != nil {
		return UserPage{}, err
	}
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return UserPage{}, err
	}
	if in.Role != "" {
		if _, err := domain.ParseRole(in.Role); err != nil {
			return UserPage{}, err
		}
	}
	if in.Status != "" {
		if _, err := domain.ParseUserStatus(in.Status); err != nil {
			return UserPage{}, err
		}
	}

	page, size := normalizePage(in.Page, in.PageSize)
	items, total, err := s.store.Users.List(ctx, repo.UserFilter{
		Role:   in.Role,
		Status: in.Status,
		Offset: (page - 1) * size,
		Limit:  size,
	})
	if err != nil {
		return UserPage{}, err
	}
	return UserPage{Total: total, Items: items}, nil
}

type UpdateUserInput struct {
	Name   *string
	Email  *string
	Status *string
}

// Update applies partial-update semantics; only admins may touch Status.
func (s *UserService) Update(ctx context.Context, actor domain.Actor, targetID uint, in UpdateUserInput) (*domain.User, error) {
	var out *domain.User
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireSelfOrAdmin(actor, targetID); err != nil {
			return err
		}
		u, err := tx.Users.ByID(ctx, targetID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Status != nil {
			if err := RequireRole(actor, domain.RoleAdmin); err != nil {
				return err
			}
			st, err := domain.ParseUserStatus(*in.Status)
			if err != nil {
				return err
			}
			u.Status = st
		}

		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

// ChangeRole is admin-only and forces the target to log in again by bumping
// the token version.
func (s *UserService) ChangeRole(ctx context.Context, actor domain.Actor, targetID uint, newRole string) error {
	role, err := domain.ParseRole(newRole)
	if err != nil {
		return err
	}
	err = s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleAdmin); err != nil {
			return err
		}
		u, err := tx.Users.ByID(ctx, targetID)
		if err != nil {
			return err
		}
		old := u.Role
		u.Role = role
		u.TokenVersion++
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		return tx.Audit.Append(ctx, &domain.AuditLog{
			UserID:    actor.UserID,
			Action:    fmt.Sprintf("role_changed:%d:%s->%s", targetID, old, role),
			IPAddress: actor.IP,
		})
	})
	if err != nil {
		return err
	}
	s.log.Info("role changed", zap.Uint("user_id", targetID), zap.String("role", newRole))
	return nil
}

// Deactivate blocks the account and revokes all outstanding tokens.
func (s *UserService) Deactivate(ctx context.Context, actor domain.Actor, targetID uint) error {
	return s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleAdmin); err != nil {
			return err
		}
		u, err := tx.Users.ByID(ctx, targetID)
		if err != nil {
			return err
		}
		u.IsActive = false
		u.Status = domain.StatusInactive
		u.TokenVersion++
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		return tx.Audit.Append(ctx, &domain.AuditLog{
			UserID:    actor.UserID,
			Action:    fmt.Sprintf("user_deactivated:%d", targetID),
			IPAddress: actor.IP,
		})
	})
}

// Restore reactivates the account. The token version is left alone: tokens
// issued before deactivation stay revoked.
func (s *UserService) Restore(ctx context.Context, actor domain.Actor, targetID uint) error {
	return s.store.Atomically(ctx, func(tx *repo.Store) error {
		if _, err := freshActorUser(ctx, tx, actor); err != nil {
			return err
		}
		if err := RequireRole(actor, domain.RoleAdmin); err != nil {
			return err
		}
		u, err := tx.Users.ByID(ctx, targetID)
		if err != nil {
			return err
		}
		u.IsActive = true
		u.Status = domain.StatusActive
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		return tx.Audit.Append(ctx, &domain.AuditLog{
			UserID:    actor.UserID,
			Action:    fmt.Sprintf("user_restored:%d", targetID),
			IPAddress: actor.IP,
		})
	})
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}

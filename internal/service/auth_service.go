package service

import (
	"context"

	"go.uber.org/zap"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
	"jobtrack/pkg/utils"
)

type AuthService struct {
	store *repo.Store
	jwt   *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(store *repo.Store, jwt *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{store: store, jwt: jwt, log: log}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a pending account. It never auto-activates and never
// creates a candidate profile.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.Users.ByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("email already registered")
	}

	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
		Status:       domain.StatusPending,
		IsActive:     true,
		TokenVersion: 1,
	}
	if err := s.store.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	u, err := s.store.Users.ByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return auth.TokenPair{}, domain.InvalidCredentials("invalid credentials")
	}
	if u.Status != domain.StatusActive || !u.IsActive {
		return auth.TokenPair{}, domain.AccountBlocked("login blocked for this account state")
	}

	pair, err := s.jwt.IssuePair(u.ID, string(u.Role), u.TokenVersion)
	if err != nil {
		return auth.TokenPair{}, domain.Internal("issue tokens failed", err)
	}
	s.log.Info("user logged in", zap.Uint("user_id", u.ID))
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access+refresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.jwt.Parse(refreshToken)
	if err != nil {
		return auth.TokenPair{}, domain.InvalidCredentials("invalid token")
	}
	if claims.Type != auth.TokenRefresh {
		return auth.TokenPair{}, domain.WrongCredentialType("refresh token required")
	}

	u, err := s.store.Users.ByID(ctx, claims.UserID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if claims.TokenVersion != u.TokenVersion {
		return auth.TokenPair{}, domain.CredentialStale("refresh token is stale")
	}
	if u.Status != domain.StatusActive || !u.IsActive {
		return auth.TokenPair{}, domain.AccountBlocked("account is not active")
	}

	pair, err := s.jwt.IssuePair(u.ID, string(u.Role), u.TokenVersion)
	if err != nil {
		return auth.TokenPair{}, domain.Internal("issue tokens failed", err)
	}
	return pair, nil
}

// ChangePassword is the canonical token-version bump: the hash update, the
// version increment and the audit entry commit together.
func (s *AuthService) ChangePassword(ctx context.Context, actor domain.Actor, oldPassword, newPassword string) error {
	err := s.store.Atomically(ctx, func(tx *repo.Store) error {
		u, err := freshActorUser(ctx, tx, actor)
		if err != nil {
			return err
		}
		if !utils.CheckPassword(oldPassword, u.PasswordHash) {
			return domain.InvalidCredentials("current password is incorrect")
		}
		u.PasswordHash = utils.HashPassword(newPassword)
		u.TokenVersion++
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}
		return tx.Audit.Append(ctx, &domain.AuditLog{
			UserID:    u.ID,
			Action:    "password_changed",
			IPAddress: actor.IP,
		})
	})
	if err != nil {
		return err
	}
	s.log.Info("password changed", zap.Uint("user_id", actor.UserID))
	return nil
}

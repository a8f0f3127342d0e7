package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
)

func TestRegister_CreatesPendingAccount(t *testing.T) {
	e := newEnv(t)

	u, err := e.auth.Register(context.Background(), service.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password-1",
		Role:     "candidate",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, u.Status)
	assert.True(t, u.IsActive)
	assert.Equal(t, 1, u.TokenVersion)

	// no candidate profile materializes on registration
	c, err := e.store.Candidates.ByUserID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := newEnv(t)

	in := service.RegisterInput{Name: "alice", Email: "alice@example.com", Password: "password-1", Role: "candidate"}
	_, err := e.auth.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = e.auth.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, kindOf(err))
}

func TestRegister_UnknownRole(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(context.Background(), service.RegisterInput{
		Name: "bob", Email: "bob@example.com", Password: "password-1", Role: "superuser",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, kindOf(err))
}

func TestLogin_PendingAccountBlocked(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(context.Background(), service.RegisterInput{
		Name: "alice", Email: "alice@example.com", Password: "password-1", Role: "candidate",
	})
	require.NoError(t, err)

	_, err = e.auth.Login(context.Background(), "alice@example.com", "password-1")
	require.Error(t, err)
	assert.Equal(t, domain.KindAccountBlocked, kindOf(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "alice", domain.RoleCandidate)

	_, err := e.auth.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidCredentials, kindOf(err))
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Login(context.Background(), "ghost@example.com", "password-1")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidCredentials, kindOf(err))
}

func TestLoginAndRefresh_RoundTrip(t *testing.T) {
	e := newEnv(t)
	u, _ := e.seedUser(t, "alice", domain.RoleCandidate)

	pair, err := e.auth.Login(context.Background(), u.Email, "password-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	next, err := e.auth.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	e := newEnv(t)
	u, _ := e.seedUser(t, "alice", domain.RoleCandidate)

	pair, err := e.auth.Login(context.Background(), u.Email, "password-1")
	require.NoError(t, err)

	_, err = e.auth.Refresh(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, domain.KindWrongCredentialType, kindOf(err))
}

func TestRefresh_StaleAfterPasswordChange(t *testing.T) {
	e := newEnv(t)
	u, actor := e.seedUser(t, "alice", domain.RoleCandidate)

	pair, err := e.auth.Login(context.Background(), u.Email, "password-1")
	require.NoError(t, err)

	require.NoError(t, e.auth.ChangePassword(context.Background(), actor, "password-1", "password-2"))

	_, err = e.auth.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, domain.KindCredentialStale, kindOf(err))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	e := newEnv(t)
	_, actor := e.seedUser(t, "alice", domain.RoleCandidate)

	err := e.auth.ChangePassword(context.Background(), actor, "wrong", "password-2")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidCredentials, kindOf(err))

	// nothing committed: the old password still works
	_, err = e.auth.Login(context.Background(), "alice@example.com", "password-1")
	assert.NoError(t, err)
}

func TestChangePassword_BumpsTokenVersionAndAudits(t *testing.T) {
	e := newEnv(t)
	u, actor := e.seedUser(t, "alice", domain.RoleCandidate)

	require.NoError(t, e.auth.ChangePassword(context.Background(), actor, "password-1", "password-2"))

	stored, err := e.store.Users.ByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TokenVersion)

	// the pre-change actor now fails the freshness check everywhere
	_, err = e.candidates.MyProfile(context.Background(), actor)
	require.Error(t, err)
	assert.Equal(t, domain.KindCredentialStale, kindOf(err))

	_, admin := e.seedUser(t, "root", domain.RoleAdmin)
	logs, err := e.audit.List(context.Background(), admin)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "password_changed", logs[0].Action)
	assert.Equal(t, u.ID, logs[0].UserID)
}

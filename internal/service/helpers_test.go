package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/domain"
	"jobtrack/internal/repo"
	"jobtrack/internal/service"
	"jobtrack/pkg/utils"
)

type env struct {
	store         *repo.Store
	jwt           *auth.JWTer
	auth          *service.AuthService
	users         *service.UserService
	candidates    *service.CandidateService
	companies     *service.CompanyService
	jobs          *service.JobService
	applications  *service.ApplicationService
	interviews    *service.InterviewService
	notifications *service.NotificationService
	audit         *service.AuditService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory sqlite gives each connection its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := repo.NewStore(db)
	require.NoError(t, store.AutoMigrate())

	jwter := &auth.JWTer{
		Secret:     []byte("test-secret"),
		Issuer:     "jobtrack-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
	log := zap.NewNop()

	return &env{
		store:         store,
		jwt:           jwter,
		auth:          service.NewAuthService(store, jwter, log),
		users:         service.NewUserService(store, log),
		candidates:    service.NewCandidateService(store, log),
		companies:     service.NewCompanyService(store, log),
		jobs:          service.NewJobService(store, nil, log),
		applications:  service.NewApplicationService(store, log),
		interviews:    service.NewInterviewService(store, log),
		notifications: service.NewNotificationService(store, log),
		audit:         service.NewAuditService(store),
	}
}

// seedUser inserts an active user directly and returns it with a matching
// actor, skipping the register/activate dance.
func (e *env) seedUser(t *testing.T, name string, role domain.Role) (*domain.User, domain.Actor) {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: utils.HashPassword("password-1"),
		Role:         role,
		Status:       domain.StatusActive,
		IsActive:     true,
		TokenVersion: 1,
	}
	require.NoError(t, e.store.Users.Create(context.Background(), u))
	return u, actorFor(u)
}

func actorFor(u *domain.User) domain.Actor {
	return domain.Actor{
		UserID:       u.ID,
		Role:         u.Role,
		TokenVersion: u.TokenVersion,
		IP:           "127.0.0.1",
	}
}

// seedCandidate creates an active candidate user with a profile.
func (e *env) seedCandidate(t *testing.T, name string) (*domain.User, *domain.Candidate, domain.Actor) {
	t.Helper()
	u, actor := e.seedUser(t, name, domain.RoleCandidate)
	c, err := e.candidates.CreateProfile(context.Background(), actor, service.CandidateInput{
		Phone:  "555-0100",
		Skills: "go,sql",
	})
	require.NoError(t, err)
	return u, c, actor
}

// seedOpenJob creates a company plus a job owned by the given HR actor and
// moves it to open.
func (e *env) seedOpenJob(t *testing.T, hr domain.Actor) *domain.Job {
	t.Helper()
	co, err := e.companies.Create(context.Background(), hr, service.CompanyInput{Name: "Acme", Industry: "software"})
	require.NoError(t, err)
	j, err := e.jobs.Create(context.Background(), hr, service.CreateJobInput{
		CompanyID:   co.ID,
		Title:       "Backend Engineer",
		Description: "builds backends",
	})
	require.NoError(t, err)
	j, err = e.jobs.UpdateState(context.Background(), hr, j.ID, "open")
	require.NoError(t, err)
	return j
}

func kindOf(err error) domain.Kind { return domain.KindOf(err) }

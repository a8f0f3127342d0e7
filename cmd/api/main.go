package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/core/cache"
	"jobtrack/internal/core/config"
	"jobtrack/internal/core/database"
	"jobtrack/internal/core/logger"
	"jobtrack/internal/core/server"
	"jobtrack/internal/repo"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/handler"
	"jobtrack/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	store := repo.NewStore(db)
	if cfg.DB.AutoMigrate {
		if err := store.AutoMigrate(); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTokenTTLHrs) * time.Hour,
	}

	var c *cache.Cache
	if cfg.Redis.Enabled {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	h := router.Handlers{
		Auth:          handler.NewAuthHandler(service.NewAuthService(store, jwter, log)),
		Users:         handler.NewUserHandler(service.NewUserService(store, log)),
		Candidates:    handler.NewCandidateHandler(service.NewCandidateService(store, log)),
		Companies:     handler.NewCompanyHandler(service.NewCompanyService(store, log)),
		Jobs:          handler.NewJobHandler(service.NewJobService(store, c, log)),
		Applications:  handler.NewApplicationHandler(service.NewApplicationService(store, log)),
		Interviews:    handler.NewInterviewHandler(service.NewInterviewService(store, log)),
		Notifications: handler.NewNotificationHandler(service.NewNotificationService(store, log)),
		Audit:         handler.NewAuditHandler(service.NewAuditService(store)),
	}

	r := router.NewAPIEngine(log, jwter, h)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

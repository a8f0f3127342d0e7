// Package router assembles the gin engines for the public API plane and the
// admin plane.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/transport/http/handler"
	mdw "jobtrack/internal/transport/http/middleware"
)

// Handlers gathers everything the API engine mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Candidates    *handler.CandidateHandler
	Companies     *handler.CompanyHandler
	Jobs          *handler.JobHandler
	Applications  *handler.ApplicationHandler
	Interviews    *handler.InterviewHandler
	Notifications *handler.NotificationHandler
	Audit         *handler.AuditHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	h.Auth.Mount(api, authed)
	h.Users.Mount(authed)
	h.Candidates.Mount(authed)
	h.Companies.Mount(api, authed)
	h.Jobs.Mount(api, authed)
	h.Applications.Mount(authed)
	h.Interviews.Mount(authed)
	h.Notifications.Mount(authed)

	return r
}

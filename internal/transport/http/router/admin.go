package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/transport/http/handler"
	mdw "jobtrack/internal/transport/http/middleware"
)

// NewAdminEngine serves the admin plane: user administration and the audit
// trail, every route gated on the admin role at the group level.
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, users *handler.UserHandler, audit *handler.AuditHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(100, 200),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	users.MountAdmin(admin)
	audit.Mount(admin)

	return r
}

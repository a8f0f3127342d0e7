package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type AuditHandler struct {
	svc *service.AuditService
}

func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) Mount(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[struct{}, []domain.AuditLog]{
		Method: http.MethodGet,
		Path:   "/audit-logs",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.AuditLog, error) {
			return h.svc.List(c.Request.Context(), actorFrom(c))
		},
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Mount(authed *gin.RouterGroup) {
	ez.Register(authed, ez.Action[struct{}, []domain.Notification]{
		Method: http.MethodGet,
		Path:   "/notifications",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Notification, error) {
			return h.svc.ListMine(c.Request.Context(), actorFrom(c))
		},
	})

	ez.Register(authed, ez.Action[struct{}, *domain.Notification]{
		Method: http.MethodPatch,
		Path:   "/notifications/:id/read",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Notification, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.MarkRead(c.Request.Context(), actorFrom(c), id)
		},
	})
}

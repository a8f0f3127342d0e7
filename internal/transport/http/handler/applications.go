package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Mount(authed *gin.RouterGroup) {
	type applyIn struct {
		JobID uint `json:"job_id" binding:"required"`
	}
	ez.Register(authed, ez.Action[applyIn, *domain.Application]{
		Method: http.MethodPost,
		Path:   "/applications",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *applyIn) (*domain.Application, error) {
			return h.svc.Apply(c.Request.Context(), actorFrom(c), in.JobID)
		},
	})

	ez.Register(authed, ez.Action[struct{}, []domain.Application]{
		Method: http.MethodGet,
		Path:   "/applications",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Application, error) {
			return h.svc.List(c.Request.Context(), actorFrom(c))
		},
	})

	type stateIn struct {
		Status string `json:"status" binding:"required"`
	}
	ez.Register(authed, ez.Action[stateIn, *domain.Application]{
		Method: http.MethodPatch,
		Path:   "/applications/:id/status",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *stateIn) (*domain.Application, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			to, err := domain.ParseApplicationStatus(in.Status)
			if err != nil {
				return nil, err
			}
			return h.svc.UpdateState(c.Request.Context(), actorFrom(c), id, to)
		},
	})

	type bulkIn struct {
		IDs    []uint `json:"ids"    binding:"required,min=1"`
		Status string `json:"status" binding:"required"`
	}
	ez.Register(authed, ez.Action[bulkIn, service.BulkResult]{
		Method: http.MethodPatch,
		Path:   "/applications/bulk-status",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *bulkIn) (service.BulkResult, error) {
			to, err := domain.ParseApplicationStatus(in.Status)
			if err != nil {
				return service.BulkResult{}, err
			}
			return h.svc.BulkUpdateState(c.Request.Context(), actorFrom(c), in.IDs, to), nil
		},
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type JobHandler struct {
	svc *service.JobService
}

func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) Mount(public, authed *gin.RouterGroup) {
	type createIn struct {
		CompanyID          uint   `json:"company_id"          binding:"required"`
		Title              string `json:"title"               binding:"required,max=128"`
		Description        string `json:"description"`
		Department         string `json:"department"          binding:"max=64"`
		ExperienceRequired int    `json:"experience_required" binding:"gte=0"`
	}
	ez.Register(authed, ez.Action[createIn, *domain.Job]{
		Method: http.MethodPost,
		Path:   "/jobs",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *createIn) (*domain.Job, error) {
			return h.svc.Create(c.Request.Context(), actorFrom(c), service.CreateJobInput{
				CompanyID:          in.CompanyID,
				Title:              in.Title,
				Description:        in.Description,
				Department:         in.Department,
				ExperienceRequired: in.ExperienceRequired,
			})
		},
	})

	type listIn struct {
		CompanyID uint `form:"company_id"`
		Page      int  `form:"page"`
		PageSize  int  `form:"page_size"`
	}
	type listOut struct {
		Total int64        `json:"total"`
		Items []domain.Job `json:"items"`
	}
	ez.Register(public, ez.Action[listIn, listOut]{
		Method: http.MethodGet,
		Path:   "/jobs",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listIn) (listOut, error) {
			page, err := h.svc.ListOpen(c.Request.Context(), in.CompanyID, in.Page, in.PageSize)
			if err != nil {
				return listOut{}, err
			}
			return listOut{Total: page.Total, Items: page.Items}, nil
		},
	})

	ez.Register(public, ez.Action[struct{}, *domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Job, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	type stateIn struct {
		Status string `json:"status" binding:"required"`
	}
	ez.Register(authed, ez.Action[stateIn, *domain.Job]{
		Method: http.MethodPatch,
		Path:   "/jobs/:id/status",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *stateIn) (*domain.Job, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.UpdateState(c.Request.Context(), actorFrom(c), id, in.Status)
		},
	})

	ez.Register(authed, ez.Action[struct{}, *service.JobAnalytics]{
		Method: http.MethodGet,
		Path:   "/jobs/:id/analytics",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*service.JobAnalytics, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Analytics(c.Request.Context(), actorFrom(c), id)
		},
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type CompanyHandler struct {
	svc *service.CompanyService
}

func NewCompanyHandler(svc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) Mount(public, authed *gin.RouterGroup) {
	type createIn struct {
		Name     string `json:"name"     binding:"required,max=128"`
		Industry string `json:"industry" binding:"max=64"`
		Location string `json:"location" binding:"max=128"`
	}
	ez.Register(authed, ez.Action[createIn, *domain.Company]{
		Method: http.MethodPost,
		Path:   "/companies",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *createIn) (*domain.Company, error) {
			return h.svc.Create(c.Request.Context(), actorFrom(c), service.CompanyInput{
				Name:     in.Name,
				Industry: in.Industry,
				Location: in.Location,
			})
		},
	})

	type listIn struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	type listOut struct {
		Total int64            `json:"total"`
		Items []domain.Company `json:"items"`
	}
	ez.Register(public, ez.Action[listIn, listOut]{
		Method: http.MethodGet,
		Path:   "/companies",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listIn) (listOut, error) {
			page, err := h.svc.List(c.Request.Context(), in.Page, in.PageSize)
			if err != nil {
				return listOut{}, err
			}
			return listOut{Total: page.Total, Items: page.Items}, nil
		},
	})
}

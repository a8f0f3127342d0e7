package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type CandidateHandler struct {
	svc *service.CandidateService
}

func NewCandidateHandler(svc *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

func (h *CandidateHandler) Mount(authed *gin.RouterGroup) {
	type profileIn struct {
		Phone           string `json:"phone"            binding:"max=32"`
		Skills          string `json:"skills"`
		ExperienceYears int    `json:"experience_years" binding:"gte=0"`
		ResumePath      string `json:"resume_path"`
	}
	ez.Register(authed, ez.Action[profileIn, *domain.Candidate]{
		Method: http.MethodPost,
		Path:   "/candidates/profile",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *profileIn) (*domain.Candidate, error) {
			return h.svc.CreateProfile(c.Request.Context(), actorFrom(c), service.CandidateInput{
				Phone:           in.Phone,
				Skills:          in.Skills,
				ExperienceYears: in.ExperienceYears,
				ResumePath:      in.ResumePath,
			})
		},
	})

	ez.Register(authed, ez.Action[struct{}, *domain.Candidate]{
		Method: http.MethodGet,
		Path:   "/candidates/me",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Candidate, error) {
			return h.svc.MyProfile(c.Request.Context(), actorFrom(c))
		},
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type InterviewHandler struct {
	svc *service.InterviewService
}

func NewInterviewHandler(svc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) Mount(authed *gin.RouterGroup) {
	type scheduleIn struct {
		ApplicationID uint      `json:"application_id" binding:"required"`
		InterviewerID uint      `json:"interviewer_id" binding:"required"`
		ScheduledAt   time.Time `json:"scheduled_at"   binding:"required"`
		Type          string    `json:"type"           binding:"max=32"`
	}
	ez.Register(authed, ez.Action[scheduleIn, *domain.Interview]{
		Method: http.MethodPost,
		Path:   "/interviews",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *scheduleIn) (*domain.Interview, error) {
			return h.svc.Schedule(c.Request.Context(), actorFrom(c), service.ScheduleInterviewInput{
				ApplicationID: in.ApplicationID,
				InterviewerID: in.InterviewerID,
				ScheduledAt:   in.ScheduledAt,
				Type:          in.Type,
			})
		},
	})

	type updateIn struct {
		ScheduledAt *time.Time `json:"scheduled_at"`
		Type        *string    `json:"type"   binding:"omitempty,max=32"`
		Status      *string    `json:"status"`
	}
	ez.Register(authed, ez.Action[updateIn, *domain.Interview]{
		Method: http.MethodPatch,
		Path:   "/interviews/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *updateIn) (*domain.Interview, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Update(c.Request.Context(), actorFrom(c), id, service.UpdateInterviewInput{
				ScheduledAt: in.ScheduledAt,
				Type:        in.Type,
				Status:      in.Status,
			})
		},
	})

	type feedbackIn struct {
		Rating         *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
		Comments       string   `json:"comments"`
		Recommendation string   `json:"recommendation" binding:"max=32"`
	}
	ez.Register(authed, ez.Action[feedbackIn, *domain.Feedback]{
		Method: http.MethodPost,
		Path:   "/interviews/:id/feedback",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *feedbackIn) (*domain.Feedback, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.SubmitFeedback(c.Request.Context(), actorFrom(c), service.FeedbackInput{
				InterviewID:    id,
				Rating:         in.Rating,
				Comments:       in.Comments,
				Recommendation: in.Recommendation,
			})
		},
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type userRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserRow(u domain.User, _ int) userRow {
	return userRow{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

func (h *UserHandler) Mount(authed *gin.RouterGroup) {
	type listIn struct {
		Role     string `form:"role"`
		Status   string `form:"status"`
		Page     int    `form:"page"`
		PageSize int    `form:"page_size"`
	}
	type listOut struct {
		Total int64     `json:"total"`
		Items []userRow `json:"items"`
	}
	ez.Register(authed, ez.Action[listIn, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listIn) (listOut, error) {
			page, err := h.svc.List(c.Request.Context(), actorFrom(c), service.ListUsersInput{
				Role:     in.Role,
				Status:   in.Status,
				Page:     in.Page,
				PageSize: in.PageSize,
			})
			if err != nil {
				return listOut{}, err
			}
			return listOut{Total: page.Total, Items: lo.Map(page.Items, toUserRow)}, nil
		},
	})

	type updateIn struct {
		Name   *string `json:"name"   binding:"omitempty,max=64"`
		Email  *string `json:"email"  binding:"omitempty,email"`
		Status *string `json:"status"`
	}
	ez.Register(authed, ez.Action[updateIn, userRow]{
		Method: http.MethodPatch,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *updateIn) (userRow, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return userRow{}, err
			}
			u, err := h.svc.Update(c.Request.Context(), actorFrom(c), id, service.UpdateUserInput{
				Name:   in.Name,
				Email:  in.Email,
				Status: in.Status,
			})
			if err != nil {
				return userRow{}, err
			}
			return toUserRow(*u, 0), nil
		},
	})
}

// MountAdmin carries the operations exposed only on the admin plane.
func (h *UserHandler) MountAdmin(g *gin.RouterGroup) {
	type roleIn struct {
		Role string `json:"role" binding:"required"`
	}
	ez.Register(g, ez.Action[roleIn, gin.H]{
		Method: http.MethodPatch,
		Path:   "/users/:id/role",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *roleIn) (gin.H, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := h.svc.ChangeRole(c.Request.Context(), actorFrom(c), id, in.Role); err != nil {
				return nil, err
			}
			return gin.H{"message": "role updated"}, nil
		},
	})

	ez.Register(g, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := h.svc.Deactivate(c.Request.Context(), actorFrom(c), id); err != nil {
				return nil, err
			}
			return gin.H{"message": "user deactivated"}, nil
		},
	})

	ez.Register(g, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/restore",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := idParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := h.svc.Restore(c.Request.Context(), actorFrom(c), id); err != nil {
				return nil, err
			}
			return gin.H{"message": "user restored"}, nil
		},
	})
}

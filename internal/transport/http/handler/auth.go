package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/domain"
	"jobtrack/internal/service"
	"jobtrack/internal/transport/http/ez"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Mount(public, authed *gin.RouterGroup) {
	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"     binding:"required"`
	}
	type registerOut struct {
		UserID uint              `json:"user_id"`
		Status domain.UserStatus `json:"status"`
	}
	ez.Register(public, ez.Action[registerIn, registerOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (registerOut, error) {
			u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
				Name:     in.Name,
				Email:    in.Email,
				Password: in.Password,
				Role:     in.Role,
			})
			if err != nil {
				return registerOut{}, err
			}
			return registerOut{UserID: u.ID, Status: u.Status}, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type tokenOut struct {
		auth.TokenPair
		TokenType string `json:"token_type"`
	}
	ez.Register(public, ez.Action[loginIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (tokenOut, error) {
			pair, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{TokenPair: pair, TokenType: "bearer"}, nil
		},
	})

	type refreshIn struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	ez.Register(public, ez.Action[refreshIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *refreshIn) (tokenOut, error) {
			pair, err := h.svc.Refresh(c.Request.Context(), in.RefreshToken)
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{TokenPair: pair, TokenType: "bearer"}, nil
		},
	})

	type changePwIn struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	ez.Register(authed, ez.Action[changePwIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/change-password",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *changePwIn) (gin.H, error) {
			if err := h.svc.ChangePassword(c.Request.Context(), actorFrom(c), in.OldPassword, in.NewPassword); err != nil {
				return nil, err
			}
			return gin.H{"message": "Password changed. Please login again."}, nil
		},
	})
}

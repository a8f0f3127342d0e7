// Package handler maps routes onto service operations. Handlers only bind
// and translate; every authorization and state rule lives in the services.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/core/auth"
	"jobtrack/internal/domain"
	mdw "jobtrack/internal/transport/http/middleware"
)

// actorFrom rebuilds the acting identity from the verified access-token
// claims set by the auth middleware.
func actorFrom(c *gin.Context) domain.Actor {
	v, _ := c.Get(mdw.KeyClaims)
	claims, _ := v.(*auth.Claims)
	if claims == nil {
		return domain.Actor{IP: c.ClientIP()}
	}
	return domain.Actor{
		UserID:       claims.UserID,
		Role:         domain.Role(claims.Role),
		TokenVersion: claims.TokenVersion,
		IP:           c.ClientIP(),
	}
}

func idParam(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, domain.Validation("invalid " + name)
	}
	return uint(n), nil
}

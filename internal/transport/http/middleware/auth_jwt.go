package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/core/auth"
	resp "jobtrack/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT requires a bearer access token. Refresh tokens are rejected here;
// they are only accepted by the refresh endpoint body. When requireRole is
// non-empty the token's role claim must match (the services re-check roles
// against the stored user regardless).
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if claims.Type != auth.TokenAccess {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "access token required"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}

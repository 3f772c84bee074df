package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/domain/user"
)

const (
	CtxUserID = "userID"
	CtxUser   = "user"
)

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// AuthMiddleware resolves the bearer token to a live user row so every
// handler behind it sees the current account state, not claims minted
// at login time.
func AuthMiddleware(tokens ports.TokenService, userRepo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing Authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			unauthorized(c, "invalid token format")
			return
		}

		id, err := tokens.SubjectID(tokenStr)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		u, err := userRepo.FetchByID(c.Request.Context(), user.ID(id))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve user"},
			)
			return
		}
		if u == nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(CtxUserID, id)
		c.Set(CtxUser, u)

		c.Next()
	}
}

// RequireActive rejects deactivated accounts. Must run after
// AuthMiddleware.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve user"},
			)
			return
		}
		if !u.EstadoActivo {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "usuario inactivo"},
			)
			return
		}

		c.Next()
	}
}

// CurrentUser pulls the authenticated user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"voucher-hub/internal/pkg/cookie"
	"voucher-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	disabled       bool
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, disabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		disabled:       disabled,
	}
}

// RequireAuth accepts the auth cookie or a bearer header. When authentication
// is disabled by configuration every request passes.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.disabled {
			c.Next()
			return
		}

		token := cookie.GetAuthToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		if err := m.tokenValidator.ValidateToken(token); err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"waitline/internal/infrastructure/auth"
	"waitline/internal/shared/logger"
	"waitline/internal/shared/utils"
)

// ContextKeyUserID is the gin context key carrying the authenticated user.
const ContextKeyUserID = "user_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by RequireAuth.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

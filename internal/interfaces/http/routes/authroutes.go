package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "waitline/internal/interfaces/http/handlers/auth"
	"waitline/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}

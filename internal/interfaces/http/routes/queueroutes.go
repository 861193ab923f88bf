package routes

import (
	"github.com/gin-gonic/gin"

	queuehandlers "waitline/internal/interfaces/http/handlers/queue"
	"waitline/internal/interfaces/http/middleware"
)

type QueueRouteConfig struct {
	QueueHandler     *queuehandlers.QueueHandler
	AuthMiddleware   *middleware.AuthMiddleware
	IssueRateLimiter *middleware.UserRateLimiter
}

func SetupQueueRoutes(engine *gin.Engine, config *QueueRouteConfig) {
	queue := engine.Group("/queue")
	queue.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		if config.IssueRateLimiter != nil {
			queue.POST("", config.IssueRateLimiter.Limit(), config.QueueHandler.IssueTicket)
		} else {
			queue.POST("", config.QueueHandler.IssueTicket)
		}
		queue.GET("", config.QueueHandler.ListTickets)

		queue.GET("/counters", config.QueueHandler.GetCounters)
		queue.POST("/next", config.QueueHandler.CallNext)
		queue.DELETE("/reset", config.QueueHandler.ResetQueue)

		// Generic parameterized routes (must come LAST)
		queue.PUT("/:id", config.QueueHandler.UpdateTicket)
		queue.DELETE("/:id", config.QueueHandler.DeleteTicket)
	}
}

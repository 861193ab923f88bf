package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	queueUC "waitline/internal/application/queue/usecases"
	userUC "waitline/internal/application/user/usecases"
	"waitline/internal/domain/queue"
	"waitline/internal/infrastructure/auth"
	"waitline/internal/infrastructure/config"
	"waitline/internal/infrastructure/ratelimit"
	"waitline/internal/infrastructure/repository"
	authhandlers "waitline/internal/interfaces/http/handlers/auth"
	queuehandlers "waitline/internal/interfaces/http/handlers/queue"
	"waitline/internal/interfaces/http/middleware"
	"waitline/internal/interfaces/http/routes"
	shareddb "waitline/internal/shared/db"
	"waitline/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine           *gin.Engine
	queueHandler     *queuehandlers.QueueHandler
	authHandler      *authhandlers.AuthHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	issueRateLimiter *middleware.UserRateLimiter
}

type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint) (*userUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID)
	if err != nil {
		return nil, err
	}
	return &userUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenService := &jwtServiceAdapter{jwtSvc}

	serviceTimes := queue.ServiceTimes{
		RegularMinutes:  cfg.Queue.RegularAvgServiceMinutes,
		PriorityMinutes: cfg.Queue.PriorityAvgServiceMinutes,
	}
	counterBases := queue.CounterBases{
		Regular:  cfg.Queue.RegularCounterBase,
		Priority: cfg.Queue.PriorityCounterBase,
	}

	queueHandler := queuehandlers.NewQueueHandler(
		queueUC.NewIssueTicketUseCase(ticketRepo, txManager, serviceTimes, counterBases, log),
		queueUC.NewListTicketsUseCase(ticketRepo, log),
		queueUC.NewUpdateTicketUseCase(ticketRepo, log),
		queueUC.NewCallNextUseCase(ticketRepo, log),
		queueUC.NewDeleteTicketUseCase(ticketRepo, log),
		queueUC.NewGetCountersUseCase(ticketRepo, counterBases, log),
		queueUC.NewResetQueueUseCase(ticketRepo, log),
	)

	authHandler := authhandlers.NewAuthHandler(
		userUC.NewRegisterUseCase(userRepo, hasher, log),
		userUC.NewLoginUseCase(userRepo, hasher, tokenService, log),
	)

	var rateLimiter *middleware.RateLimiter
	var issueRateLimiter *middleware.UserRateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 10, time.Minute)
		issueRateLimiter = middleware.NewUserRateLimiter(
			ratelimit.NewRedisRateLimiter(redisClient),
			ratelimit.RateLimitConfig{
				RequestsPerMinute: 30,
				RequestsPerHour:   300,
			},
		)
	}

	return &Router{
		engine:           engine,
		queueHandler:     queueHandler,
		authHandler:      authHandler,
		authMiddleware:   middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:      rateLimiter,
		issueRateLimiter: issueRateLimiter,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupQueueRoutes(r.engine, &routes.QueueRouteConfig{
		QueueHandler:     r.queueHandler,
		AuthMiddleware:   r.authMiddleware,
		IssueRateLimiter: r.issueRateLimiter,
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// InitRedis creates and tests the Redis client connection.
func InitRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, rate limiting disabled", "error", err)
		return nil
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

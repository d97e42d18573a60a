package handler

import (
	"github.com/JingsthonC/xertiq/internal/adapter/http/middleware"
	redisStore "github.com/JingsthonC/xertiq/internal/adapter/storage/redis"
	"github.com/JingsthonC/xertiq/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Pipeline       ports.BatchPipeline
	Anchorer       ports.AnchorCoordinator
	Verifier       ports.VerificationEngine
	Broker         ports.ProgressBroker
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(16 << 20)) // encrypted blobs ride inline in batch submissions

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	batchHandler := NewBatchHandler(deps.Pipeline, deps.Anchorer)
	eventsHandler := NewEventsHandler(deps.Pipeline, deps.Broker)
	batches := v1.Group("/batches")
	{
		batches.POST("", rl("batches_create"), batchHandler.CreateBatch)
		batches.GET("", rl("batches_read"), batchHandler.ListBatches)
		batches.GET("/:id", rl("batches_read"), batchHandler.GetBatch)
		batches.POST("/:id/anchor", rl("anchor_retry"), batchHandler.RetryAnchor)
		batches.GET("/:id/events", eventsHandler.StreamEvents)
	}

	verifyHandler := NewVerifyHandler(deps.Verifier)
	verify := v1.Group("/verify")
	{
		verify.POST("", rl("verify"), verifyHandler.VerifyClaim)
		verify.GET("/:documentID", rl("verify"), verifyHandler.VerifyDocument)
	}

	return r
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	// Auth decides how the acting identity is established.
	Auth *config.AuthConfig

	// Server supplies the request timeout and body limit.
	Server *config.ServerConfig

	HealthHandler  *handlers.HealthHandler
	ArticleHandler *handlers.ArticleHandler
	CommentHandler *handlers.CommentHandler
	CatalogHandler *handlers.CatalogHandler

	// RateLimiter throttles writes per identity; nil disables it.
	RateLimiter *middleware.RateLimiter

	// RateLimitObserver is told about throttled writes.
	RateLimitObserver middleware.RateLimitObserver
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID and Correlation ID
//  3. OpenTelemetry - tracing, then HTTP metrics
//  4. Logging - request logging (skips /-/ endpoints)
//  5. Max body size
//  6. Identify - acting identity from bearer token or gateway header
//
// Route groups:
//   - /-/ (operational): health, build info and metrics; no timeout
//   - /api/v1/ (public API): request timeout; writes require an identity
//     and pass the rate limiter
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.Server != nil {
		engine.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))
	}

	engine.Use(middleware.Identify(cfg.Auth))

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "Not found.")
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeMethodNotAllowed, "Method \""+c.Request.Method+"\" not allowed.")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.Register(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Server != nil && cfg.Server.RequestTimeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	guards := writeGuards(cfg)

	if cfg.ArticleHandler != nil {
		cfg.ArticleHandler.RegisterArticleRoutes(rg, guards...)
	}

	if cfg.CommentHandler != nil {
		cfg.CommentHandler.RegisterCommentRoutes(rg, guards...)
	}

	if cfg.CatalogHandler != nil {
		cfg.CatalogHandler.RegisterCatalogRoutes(rg)
	}
}

// writeGuards rejects anonymous writers before they spend rate budget.
func writeGuards(cfg RouterConfig) []gin.HandlerFunc {
	guards := []gin.HandlerFunc{middleware.RequireAuth()}

	if cfg.RateLimiter != nil {
		guards = append(guards, cfg.RateLimiter.Middleware(cfg.RateLimitObserver))
	}

	return guards
}

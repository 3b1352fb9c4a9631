package router

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, store service.IRecipeStore, logger *log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.GET("/health", api.HealthCheck)

	// Mutating routes share one per-client limiter
	var mutating []gin.HandlerFunc
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Limit: cfg.RateLimit,
			Burst: cfg.RateBurst,
		})
		mutating = append(mutating, limiter.RateLimitMiddleware())
	}

	v1 := router.Group("/api/v1")
	v1.GET("/categories", api.ListCategories)
	api.NewRecipeHandler(store).RegisterRoutes(v1, mutating...)
	api.NewSessionHandler(store).RegisterRoutes(v1, mutating...)

	return router
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/price_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/SscSPs/price_dashboard/internal/observability"
	"github.com/SscSPs/price_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// adminRateLimit caps reloads, each of which refetches the source.
const adminRateLimit = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metrics *observability.Metrics,
) error {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	apiLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure api rate limit: %w", err)
	}
	adminLimiter, err := middleware.NewRateLimiter(adminRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure admin rate limit: %w", err)
	}

	// The read API is public and rate limited per client IP
	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))

	// Delegate route registration to specific handlers, passing required services
	registerDatasetRoutes(v1, service.Dataset)
	registerSeriesRoutes(v1, service.Dataset)
	registerTableRoutes(v1, service.Dataset)
	registerExchangeRateRoutes(v1, service.ExchangeRate)

	admin := v1.Group("/admin",
		middleware.GinMiddlewarize(adminLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)
	registerAdminRoutes(admin, service.Dataset)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/compchange/cmd/docs"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/middleware"
	"github.com/paydesk/compchange/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	ginSwagger "github.com/swaggo/gin-swagger"
	swaggerFiles "github.com/swaggo/files"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public auth routes, rate limited by client IP
	public := r.Group("/api/v1")
	if rate, err := limiter.NewRateFromFormatted(cfg.RateLimit); err == nil {
		ipLimiter := limiter.New(memory.NewStore(), rate)
		public.Use(middleware.RateLimit(ipLimiter))
	} else {
		slog.Error("Invalid rate limit format, auth routes left unlimited", "rate_limit", cfg.RateLimit, "error", err)
	}
	registerAuthRoutes(public, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterChangeRoutes(v1, services.Change, services.User)
	registerMessageRoutes(v1, services.Message, services.User)
	registerEmployeeRoutes(v1, services.Employee, services.Change)
	registerCatalogRoutes(v1, services.Catalog)
	registerUserRoutes(v1, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

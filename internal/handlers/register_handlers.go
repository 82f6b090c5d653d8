package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/accounts_movements_service/cmd/docs"
	portssvc "github.com/SscSPs/accounts_movements_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_movements_service/internal/dto"
	"github.com/SscSPs/accounts_movements_service/internal/middleware"
	"github.com/SscSPs/accounts_movements_service/internal/platform/config"
	"github.com/SscSPs/accounts_movements_service/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metricsHandler http.Handler,
) {
	if err := dto.RegisterValidators(); err != nil {
		slog.Error("Failed to register request validators", slog.String("error", err.Error()))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

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
	v1 := r.Group("/api/v1")
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	limits := pagination.Limits{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize}
	RegisterReportingRoutes(v1, services.Reporting, limits)
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

package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/splitit-app/splitit_backend/cmd/docs"
	portssvc "github.com/splitit-app/splitit_backend/internal/core/ports/services"
	"github.com/splitit-app/splitit_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	checkService portssvc.CheckSvcFacade,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	v1 := r.Group("/api/v1")
	registerCheckRoutes(v1, checkService)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
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

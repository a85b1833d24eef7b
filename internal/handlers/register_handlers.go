package handlers

import (
	"github.com/Namer-kimhyojin/Budget-sub000/cmd/docs"
	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	// Every v1 request carries a caller identity for audit fields
	v1 := r.Group("/api/v1", middleware.RequestUser())

	// Delegate route registration to specific handlers, passing required services
	registerNodeRoutes(v1, service.Node, service.Relocation, service.Reorder, service.Tree)
	registerTreeRoutes(v1, service.Tree)
	registerClipboardRoutes(v1, service.Clipboard)
	registerReportRoutes(v1, service.Aggregation)
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

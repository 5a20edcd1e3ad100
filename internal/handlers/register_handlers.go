package handlers

import (
	"github.com/acmedash/invoice_dashboard_app/cmd/docs"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/middleware"
	"github.com/acmedash/invoice_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Everything behind the dashboard requires a valid session.
	setupDashboardRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupDashboardRoutes configures the authenticated dashboard API group and
// delegates to the entity route registrations.
func setupDashboardRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	dashboard := r.Group("/api/v1/dashboard", middleware.AuthMiddleware(cfg.JWTSecret, cfg.SessionCookieName))

	RegisterInvoiceRoutes(dashboard, services.Invoice)
	registerCustomerRoutes(dashboard, services.Customer)
	registerNavRoutes(dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package handlers

import (
	"github.com/SscSPs/stallchain/cmd/docs"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/SscSPs/stallchain/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// authLimiter may be nil to leave the auth endpoints unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
	probes ...Probe,
) {
	r.GET("/health", getHealth(probes))

	api := r.Group("/api/v1")

	// Public authentication routes
	registerAuthRoutes(api, services, authLimiter)

	// Everything else requires a bearer token
	setupAPIV1Routes(api, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the protected part of /api/v1 and delegates to
// specific entity route registrations.
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerStallRoutes(v1, services.Stall)
	registerDeliveryZoneRoutes(v1, services.DeliveryZone)
	registerOrderRoutes(v1, services.Order)
	registerPayrollRoutes(v1, services.Payroll)
	registerInvestorRoutes(v1, services.Investor)
	registerExpenseRoutes(v1, services.Expense)
	registerProfitLossRoutes(v1, services.ProfitLoss)
	registerInventoryRoutes(v1, services.Inventory)
	registerStallPerformanceRoutes(v1, services.StallPerformance)
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

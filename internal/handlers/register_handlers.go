package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/cmd/docs"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/middleware"
	"github.com/svarno/svarno_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupPublicRoutes(r, cfg, services); err != nil {
		return err
	}
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupPublicRoutes registers the sign-in routes behind a per-IP rate limit.
func setupPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	limiter, err := middleware.NewIPRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("auth rate limiter: %w", err)
	}
	public := r.Group("/api/v1", middleware.RateLimit(limiter))
	registerAuthRoutes(public, cfg, services)
	if services.GoogleOAuthHandler != nil {
		registerGoogleOAuthRoutes(public, cfg, services)
	}
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, service.User)
	registerTransactionRoutes(v1, service.Transaction)
	registerBudgetRoutes(v1, service.Budget)
	registerDashboardRoutes(v1, service.Dashboard)
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

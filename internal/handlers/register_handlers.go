package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/poultrymitra/mitra_backend/cmd/docs"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/poultrymitra/mitra_backend/internal/platform/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterDeps carries the shared infrastructure the routes need besides services.
type RouterDeps struct {
	// Gatherer backs the /metrics endpoint. Nil disables it.
	Gatherer prometheus.Gatherer
	// RateLimiter limits authenticated API calls. Nil disables limiting.
	RateLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Translations are needed before login, so they stay public
	if services.Translation != nil {
		RegisterTranslationRoutes(r.Group("/api/v1"), services.Translation)
	}

	setupAPIV1Routes(r, cfg, services, deps.RateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	lim *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if lim != nil {
		v1.Use(middleware.RateLimit(lim))
	}

	RegisterLedgerRoutes(v1, services.Ledger)
	RegisterBatchRoutes(v1, services.Batch)
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowOrigins = cfg.CORSAllowedOrigins
	if len(cc.AllowOrigins) == 0 || slices.Contains(cc.AllowOrigins, "*") {
		cc.AllowOrigins = nil
		cc.AllowAllOrigins = true
	}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "X-Request-ID")
	cc.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	cc.MaxAge = 12 * time.Hour
	return cc
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

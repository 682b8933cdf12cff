package router

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sjperalta/mortgagekit-api/internal/config"
	"github.com/sjperalta/mortgagekit-api/internal/handlers"
	"github.com/sjperalta/mortgagekit-api/internal/middleware"
)

const healthPath = "/api/v1/health"

// Setup builds the gin engine with global middleware and all API routes.
// limiter may be nil to disable rate limiting.
func Setup(h *handlers.Handlers, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(healthPath))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)
		v1.GET("/repayment-types", h.Mortgage.RepaymentTypes)

		calculate := v1.Group("/calculate")
		calculate.Use(middleware.RateLimit(limiter))
		calculate.Use(middleware.Auth(cfg.JWTSecret))
		{
			calculate.POST("", h.Mortgage.Calculate)
			calculate.POST("/summary", h.Mortgage.Summary)
			calculate.POST("/compare", h.Mortgage.Compare)
			calculate.POST("/export", h.Mortgage.Export)
		}
	}

	return router
}

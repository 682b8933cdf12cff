package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/sjperalta/mortgagekit-api/docs" // Swagger docs
	"github.com/sjperalta/mortgagekit-api/internal/config"
	"github.com/sjperalta/mortgagekit-api/internal/handlers"
	"github.com/sjperalta/mortgagekit-api/internal/middleware"
	"github.com/sjperalta/mortgagekit-api/internal/router"
	"github.com/sjperalta/mortgagekit-api/internal/services"
	"github.com/sjperalta/mortgagekit-api/pkg/logger"
)

// @title Mortgagekit API
// @version 1.0
// @description REST API for mortgage amortization schedules and summaries

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
			Release:          cfg.Version,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set: calculation endpoints are public")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		logger.Info("Rate limiting enabled", "per_minute", cfg.RateLimitPerMinute)
	}

	svcs := services.NewServices()
	h := handlers.NewHandlers(svcs, cfg.Version, cfg.MaxBodyBytes)
	engine := router.Setup(h, cfg, limiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "version", cfg.Version)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if limiter != nil {
		limiter.Stop()
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inzzo/inzzo-landing/config"
	"github.com/inzzo/inzzo-landing/internal/handlers"
	"github.com/inzzo/inzzo-landing/internal/middleware"
	"github.com/inzzo/inzzo-landing/internal/services"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// routerDeps are the collaborators the HTTP surface needs
type routerDeps struct {
	submissions services.SubmissionServiceInterface
	pages       handlers.PageSource
}

// setupRouter assembles middleware and routes for the landing server
func setupRouter(cfg *config.Config, deps routerDeps) *gin.Engine {
	router := gin.New()

	// Global middleware; recovery first so it also covers the rest of the chain
	router.Use(middleware.RecoveryMiddleware())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CacheControlMiddleware())

	// CORS stays off unless origins are configured; the landing page posts same-origin
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() && len(allowedOrigins) > 0 {
		allowedOrigins = append(allowedOrigins, "http://localhost:5001", "http://127.0.0.1:5001")
	}
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "traceparent", "tracestate"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Compression sits innermost so it sees the final body
	router.Use(middleware.CompressionMiddleware(cfg.Compression.Level, cfg.Compression.MinSize))

	pageHandler := handlers.NewPageHandler(deps.pages, cfg.Static.IndexFile)
	submissionHandler := handlers.NewSubmissionHandler(deps.submissions)
	healthHandler := handlers.NewHealthHandler(deps.submissions.NotificationsConfigured)

	// Landing page and assets
	router.GET("/", pageHandler.Index)
	router.Static("/static", cfg.Static.Dir)

	// Form submissions
	api := router.Group("/api")
	api.Use(middleware.BodySizeLimitMiddleware(cfg.Server.MaxBodyBytes))
	api.POST("/submit-lead", submissionHandler.SubmitLead)
	api.POST("/submit-order", submissionHandler.SubmitOrder)

	// Operational endpoints
	router.GET("/health", healthHandler.Healthcheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	router.NoRoute(handlers.NotFound)

	return router
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inzzo/inzzo-landing/config"
	"github.com/inzzo/inzzo-landing/internal/cache"
	"github.com/inzzo/inzzo-landing/internal/services"
	"github.com/inzzo/inzzo-landing/pkg/httpclient"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	"github.com/inzzo/inzzo-landing/pkg/profiling"
	"github.com/inzzo/inzzo-landing/pkg/telegram"
	"github.com/inzzo/inzzo-landing/pkg/tracing"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting INZZO landing server",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.Bool("telegram_bot_configured", cfg.Telegram.BotToken != ""),
		zap.Bool("telegram_chat_configured", cfg.Telegram.ChatID != ""),
	)
	if !cfg.TelegramConfigured() {
		logger.Warn("Telegram credentials not found; submissions will be accepted without notifications",
			zap.String("required", "TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID"))
	}

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling is opt-in
	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Error("Failed to start profiler, continuing without it", zap.Error(err))
	} else {
		defer stopProfiler()
	}

	metrics.Init()

	// Notification pipeline: HTTP client -> Bot API client -> notifier
	httpClient := httpclient.NewClientWithTimeout(cfg.TelegramTimeout())
	telegramClient := telegram.NewClient(cfg.Telegram, httpClient)
	notifier := services.NewTelegramNotifier(telegramClient)
	submissionService := services.NewSubmissionService(notifier)

	pageCache := cache.NewPageCache(cfg.PageCacheTTL())

	gin.SetMode(cfg.Server.GinMode)
	router := setupRouter(cfg, routerDeps{
		submissions: submissionService,
		pages:       pageCache,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Leaves room for the Telegram call on top of request handling
		WriteTimeout:   cfg.TelegramTimeout() + 20*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

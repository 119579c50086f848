package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skeptikoss/legalflow-ai-assistant/config"
	"github.com/skeptikoss/legalflow-ai-assistant/handler"
	"github.com/skeptikoss/legalflow-ai-assistant/job"
	"github.com/skeptikoss/legalflow-ai-assistant/middleware"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	if cfg.Anthropic.APIKey == "" {
		slog.Warn("no Anthropic API key configured, letter generation will use fallback content")
	}

	// Initialize services
	caches := service.NewCaches(cfg.Cache.LetterTTL(), cfg.Cache.DocumentTTL())
	provider := service.NewAnthropicService(&cfg.Anthropic)
	renderer := service.NewChromeRenderer(&cfg.Renderer)
	demos := service.NewDemoCatalog()
	relay := service.NewRelay(caches, provider, demos, service.DefaultPacing(cfg.Relay.StageDelay()))

	// Optional object-storage archive for final letters
	var archive *service.ArchiveService
	if cfg.Archive.Enabled {
		archive, err = service.NewArchiveService(&cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive service", "error", err)
			os.Exit(1)
		}
		if err := archive.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	// Periodic cache eviction
	sweeper, err := job.StartSweep(caches, cfg.Cache.SweepInterval())
	if err != nil {
		slog.Error("failed to start cache sweep", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(relay)
	renderHandler := handler.NewRenderHandler(caches, renderer, archive)
	adminHandler := handler.NewAdminHandler(caches, provider)
	demoHandler := handler.NewDemoHandler(demos)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                // Request ID for tracing
	router.Use(middleware.Recovery())                 // Panic recovery
	router.Use(middleware.RequestLogger())            // Access logging
	router.Use(middleware.CORS())                     // CORS
	router.Use(middleware.NoCache())                  // Cache control for API responses
	router.Use(middleware.RateLimit(60, time.Minute)) // Rate limiting: 60 requests per minute

	// Non-matching verbs get 405 rather than gin's default 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.POST("/generate", generateHandler.Generate)
	router.POST("/render", renderHandler.Render)
	router.POST("/cache/clear", adminHandler.ClearCache)
	router.GET("/health", adminHandler.Health)

	// Legacy paths used by the demo frontend
	api := router.Group("/api")
	{
		api.POST("/generate", generateHandler.Generate)
		api.POST("/pdf", renderHandler.Render)
		api.POST("/pdf-preview", renderHandler.Preview)
		api.POST("/clear-cache", adminHandler.ClearCache)
		api.GET("/health", adminHandler.Health)
		api.GET("/demo/:scenario", demoHandler.Scenario)
	}

	// Create server. Write timeout must cover a full relay including the
	// provider call, so it is generous.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

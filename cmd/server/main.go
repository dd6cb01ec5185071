package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roomatch/api/internal/config"
	"github.com/roomatch/api/internal/database"
	"github.com/roomatch/api/internal/handler"
	"github.com/roomatch/api/internal/metrics"
	"github.com/roomatch/api/internal/middleware"
	"github.com/roomatch/api/internal/repository"
	"github.com/roomatch/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	listingRepo := repository.NewListingRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	questionnaireRepo := repository.NewQuestionnaireRepository(db)

	// Initialize services
	compatibilityService := service.NewCompatibilityService(service.CompatibilityServiceConfig{
		QuestionnaireRepo: questionnaireRepo,
		Policy: service.ScoringPolicy{
			ReservedQuestionID: cfg.Matching.ReservedQuestionID,
			YearQuestionID:     cfg.Matching.YearQuestionID,
			CriticalQuestionID: cfg.Matching.CriticalQuestionID,
			RadioScaleMax:      cfg.Matching.RadioScaleMax,
		},
	})

	preferenceFilter := service.NewPreferenceFilter(service.PreferenceFilterConfig{
		ListingRepo:    listingRepo,
		PreferenceRepo: preferenceRepo,
	})

	recommendationService := service.NewRecommendationService(service.RecommendationServiceConfig{
		Filter:       preferenceFilter,
		Scorer:       compatibilityService,
		DefaultLimit: cfg.Matching.DefaultLimit,
		MaxLimit:     cfg.Matching.MaxLimit,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	// Create router and register routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /v1/recommendations", recommendationHandler.Recommendations)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Identity,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/machines-eye/internal/api"
	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/repository"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/source"
	"github.com/timmy/machines-eye/internal/storage"
)

func main() {
	// Initialize logger from LOG_* environment variables
	log := logger.NewFromEnv(logger.LoadFromEnv())
	logger.SetDefaultLogger(log)
	defer logger.Sync()

	// Support CONFIG_PATH environment variable for production deployments
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config: %v", err)
	}

	ctx := logger.SetComponent(context.Background(), "boot")

	// Initialize storage (local directory, S3, R2 or any S3-compatible endpoint)
	objectStorage, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage: %v", err)
	}

	deps := source.Dependencies{
		HTTP:    cfg.HTTP,
		Storage: objectStorage,
	}

	// The database is only opened when the corpus lives there
	if cfg.Corpus.Source == config.SourceDatabase {
		db, err := repository.InitDB(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to initialize database: %v", err)
		}
		deps.Works = repository.NewWorkRepository(db)
	}

	corpusLoader, err := source.NewCorpusLoader(cfg.Corpus, deps)
	if err != nil {
		logger.Fatal("Failed to configure corpus source: %v", err)
	}
	exhibitionLoader, err := source.NewExhibitionLoader(cfg.Exhibition, deps)
	if err != nil {
		logger.Fatal("Failed to configure exhibition source: %v", err)
	}

	registry := service.NewRegistry(source.DocumentSet{
		Corpus:     corpusLoader,
		Exhibition: exhibitionLoader,
	})

	logger.CtxInfo(ctx, "Loading exhibition: corpus=%s, exhibition=%s",
		corpusLoader.Describe(), exhibitionLoader.Describe())
	if err := registry.Load(ctx); err != nil {
		logger.Fatal("Failed to load exhibition: %v", err)
	}

	// Setup router
	router := api.SetupRouter(registry, objectStorage, &cfg.Server)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.CtxInfo(ctx, "Starting API server: port=%d, mode=%s", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// SIGHUP reloads both documents; SIGINT/SIGTERM shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range quit {
		if sig != syscall.SIGHUP {
			break
		}
		if _, err := registry.Reload(ctx); err != nil {
			logger.CtxError(ctx, "Reload on SIGHUP failed, keeping current snapshot: %v", err)
		}
	}

	logger.CtxInfo(ctx, "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.CtxInfo(ctx, "Server exited")
}

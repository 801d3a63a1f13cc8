package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"newsportal.dev/editor-console/internal/config"
	"newsportal.dev/editor-console/internal/gateway"
	"newsportal.dev/editor-console/internal/metrics"
	"newsportal.dev/editor-console/internal/web"
	"newsportal.dev/editor-console/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	err := godotenv.Load(".env")
	if err != nil {
		log.Info().Msg("Not found .env file, assuming environment variables are set")
	}

	cfg := config.Load()

	// Set app prefix
	zerolog_config.SetAppPrefix("editor-console")

	// Initialize zerolog with optional Elasticsearch shipping
	zerolog_config.StartupWithEnv(cfg.ElasticsearchURL, "logs", cfg.LogLevel)

	log.Info().Msg("Starting editor-console service")

	// Start system metrics collection
	metrics.StartSystemMetricsCollection("editor-console")

	// Gateway client and routes
	gw := gateway.NewClient(cfg)
	router := web.SetupRoutes(cfg, gw)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Listen for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("gateway", cfg.GatewayBaseURL).
			Msg("Server starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().
				Err(err).
				Msg("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Info().Msg("Received shutdown signal, shutting down gracefully...")

	// Shutdown server with timeout
	shutdownTimeout := 30 * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped")
}

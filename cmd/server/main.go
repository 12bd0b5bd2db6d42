// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package main is the entry point for the Aegisboard server.
//
// Aegisboard is a self-hosted IT access audit platform. It scores user
// access events for risk, detects policy violations, and serves the
// dashboard API for compliance monitoring and per-user risk assessment.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. MongoDB: Connect and ensure the query indexes exist
//  3. Summarizer: OpenAI-backed narrative analysis behind a circuit breaker (optional)
//  4. Assessment service: per-user risk evaluation
//  5. HTTP Server: REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables
//   - Config file (config.yaml, path via CONFIG_PATH)
//   - Built-in defaults
//
// Key environment variables:
//   - MONGO_URL: MongoDB connection string (default mongodb://localhost:27017)
//   - DB_NAME: database name (default audit_dashboard)
//   - OPENAI_API_KEY: enables AI narrative analysis; without it the
//     dashboard serves a canned fallback notice
//   - CORS_ORIGINS: comma-separated allowed origins (default *)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (configurable timeout)
//   - Disconnects from MongoDB
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danakim/aegisboard/internal/api"
	"github.com/danakim/aegisboard/internal/assessment"
	"github.com/danakim/aegisboard/internal/config"
	"github.com/danakim/aegisboard/internal/llm"
	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("db_name", cfg.Mongo.Database).
		Bool("llm_enabled", cfg.LLMEnabled()).
		Msg("Starting Aegisboard")

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	st, err := store.New(connectCtx, cfg.Mongo.URL, cfg.Mongo.Database)
	connectCancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	err = st.Migrate(migrateCtx)
	migrateCancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create indexes")
	}
	logging.Info().Msg("MongoDB initialized successfully")

	var summarizer llm.Summarizer
	if cfg.LLMEnabled() {
		summarizer = llm.NewBreaker(llm.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout))
		logging.Info().Str("model", cfg.LLM.Model).Msg("AI analysis enabled")
	} else {
		summarizer = llm.Disabled{}
		logging.Warn().Msg("No LLM API key configured, risk assessments will use the fallback notice")
	}

	assessor := assessment.New(st, summarizer)
	handler := api.NewHandler(st, assessor, cfg.Sample.Count, version)
	router := api.NewRouter(handler, cfg.Security)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	logging.Info().Msg("Shutdown complete")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

// @title Courseteen API
// @version 1.0
// @description Emotion-aware retrieval chatbot backend
// @description
// @description Features:
// @description - Ingest raw text, web pages and PDF documents
// @description - Nearest-chunk retrieval over an in-memory vector store
// @description - Answers phrased for the emotion detected in the question

// @contact.name API Support
// @contact.url https://codeberg.org/courseteen/server

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name Authorization
// @description Admin key for destructive operations. Format: Bearer {key}

func main() {
	logger.Info("starting courseteen server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// write timeout covers the embed and generate budgets
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Timeouts.Generate + cfg.Timeouts.Embed + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped", "chunks_dropped", srv.services.Pipeline.Len())
}

// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/handlers"
	"github.com/tor-iv/foe-finder-sub000/middleware"
	"github.com/tor-iv/foe-finder-sub000/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// Load question bank
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			slog.Error("catalog load failed", "error", err, "file", cfg.CatalogFile)
			os.Exit(1)
		}
	}
	slog.Info("Catalog ready", "questions", cat.Len(), "neighborhoods", len(cat.Neighborhoods()))

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", dbConn.Driver())

	// Answers may have changed under a different catalog
	if _, err := handlers.RefreshStatistics(context.Background(), dbConn, cat); err != nil {
		slog.Warn("initial statistics refresh failed", "error", err)
	}

	// Create router
	mux := router.NewRouter(dbConn, cat, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// setupLogging installs the default slog logger
func setupLogging(cfg cliparse.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

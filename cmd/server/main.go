package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krisrjensen/publication-style-config-server/internal/api"
	"github.com/krisrjensen/publication-style-config-server/internal/config"
	"github.com/krisrjensen/publication-style-config-server/internal/export"
	"github.com/krisrjensen/publication-style-config-server/internal/processor"
	"github.com/krisrjensen/publication-style-config-server/internal/styles"
	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Style store: defaults are materialized explicitly at startup.
	store, err := styles.NewStore(cfg.StylesDir)
	if err != nil {
		log.Error("style store init failed", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureDefaults(); err != nil {
		log.Error("writing default styles failed", "error", err)
		os.Exit(1)
	}

	proc := processor.New(template.NewRegistry())
	coord := export.NewCoordinator(proc, export.NewChecker(cfg.HealthTimeout), cfg.HistoryLimit, log)

	srv := api.NewServer(proc, store, coord, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting publication-style-config-server", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the mrtroute server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/randytsao24/mrtroute/internal/advisory"
	"github.com/randytsao24/mrtroute/internal/api"
	"github.com/randytsao24/mrtroute/internal/api/handlers"
	"github.com/randytsao24/mrtroute/internal/config"
	"github.com/randytsao24/mrtroute/internal/network"
	"github.com/randytsao24/mrtroute/internal/routing"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	net, err := network.LoadFile(cfg.NetworkFile)
	if err != nil {
		slog.Error("failed to load network", "file", cfg.NetworkFile, "error", err)
		os.Exit(1)
	}
	slog.Info("network loaded",
		"file", cfg.NetworkFile,
		"stations", net.StationCount(),
		"lines", net.LineCount(),
	)

	finder := routing.NewFinder(net, routing.Options{
		BidirectionalTransfers: cfg.BidirectionalTransfers,
		ExplicitChanges:        cfg.ExplicitChanges,
	})

	var alerts handlers.AlertProvider
	if cfg.AlertsEnabled() {
		svc := advisory.NewService(cfg.AlertsFeedURL, cfg.HTTPTimeout, cfg.CacheTTL)
		defer svc.Close()
		alerts = svc
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(cfg, finder, alerts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mrtroute server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"url", "http://localhost:"+cfg.Port,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

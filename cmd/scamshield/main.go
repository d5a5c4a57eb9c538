package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scamshield/scamshield/internal/adapters/httpapi"
	"github.com/scamshield/scamshield/internal/adapters/providers"
	"github.com/scamshield/scamshield/internal/application"
	"github.com/scamshield/scamshield/internal/config"
	"github.com/scamshield/scamshield/internal/domain/game"
)

const shutdownGrace = 10 * time.Second

func main() {
	configPath := flag.String("config", "scamshield.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	service := application.NewAssessmentService(logger, buildProviders(logger, cfg), application.ServiceConfig{
		ForceLocal: cfg.ForceLocal,
		Seed:       seed,
	})
	server := httpapi.NewServer(logger, service, game.New(seed))

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "force_local", cfg.ForceLocal)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("stopped")
}

// buildProviders wires one client per configured credential. Missing
// keys leave the field nil, which routes that analyzer through the
// local heuristic path.
func buildProviders(logger *slog.Logger, cfg config.Config) application.Providers {
	p := application.Providers{}

	if cfg.NumverifyAPIKey != "" {
		p.Phone = providers.NewNumverifyClient(cfg.NumverifyAPIKey)
	} else {
		logger.Info("no Numverify key, phone checks use synthetic lookups")
	}
	if cfg.VirusTotalAPIKey != "" {
		p.URL = providers.NewVirusTotalClient(cfg.VirusTotalAPIKey)
	} else {
		logger.Info("no VirusTotal key, URL scans use local heuristics")
	}
	if cfg.GeminiAPIKey != "" {
		gemini := providers.NewGeminiClient(cfg.GeminiAPIKey)
		p.Text = gemini
		p.Image = gemini
	} else {
		logger.Info("no Gemini key, message analysis uses local heuristics and image analysis uses fallback results")
	}
	if cfg.NewsAPIKey != "" {
		p.News = providers.NewNewsAPIClient(cfg.NewsAPIKey)
	} else {
		logger.Info("no NewsAPI key, news feed serves the archive")
	}

	return p
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

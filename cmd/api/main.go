package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mediascribe/mediascribe/internal/api"
	"github.com/mediascribe/mediascribe/internal/config"
	"github.com/mediascribe/mediascribe/internal/keepalive"
	"github.com/mediascribe/mediascribe/internal/media"
	"github.com/mediascribe/mediascribe/internal/stt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stopPinger := context.WithCancel(context.Background())
	defer stopPinger()

	// yt-dlp binary (downloaded on first run when the host has none)
	if err := media.Install(ctx); err != nil {
		slog.Warn("yt-dlp unavailable, downloads will fail until it is installed", "error", err)
	}

	fetcher := media.NewYTDLPFetcher(cfg.Fetch, logger)
	provider := newProvider(cfg.STT)
	slog.Info("transcription backend selected", "provider", provider.Name())

	router := api.NewRouter(cfg, fetcher, provider)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	if cfg.Keepalive.BaseURL != "" {
		pinger := keepalive.New(cfg.Keepalive.BaseURL, cfg.Keepalive.Interval, cfg.Keepalive.Timeout, logger)
		go pinger.Run(ctx)
	}

	go func() {
		slog.Info("starting API server", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	stopPinger()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func newProvider(cfg config.STTConfig) stt.Provider {
	if cfg.Backend == "local" {
		return stt.NewLocalProvider(stt.LocalConfig{
			BaseURL:      cfg.LocalBaseURL,
			DefaultModel: cfg.DefaultModel,
		})
	}
	return stt.NewOpenAIProvider(stt.OpenAIConfig{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
	})
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mhedlund/bizcomb/app/api"
	"github.com/mhedlund/bizcomb/app/cfg"
	"github.com/mhedlund/bizcomb/app/listing"
	"github.com/mhedlund/bizcomb/app/scraper"
)

func main() {
	// A local .env is optional; flags and real environment variables win
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting BizComb server...", "version", appCfg.Version)

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.ScrapeTimeout) * time.Second,
	}

	// Core components
	translator := listing.NewTranslator()
	converter := listing.NewConverter()
	transformer := listing.NewTransformer(translator, converter)
	pipeline := listing.NewPipeline(transformer, listing.NewDeduplicator())
	filterer := listing.NewFilterer()
	siteScraper := scraper.NewScraper(httpClient)

	apiHandler := api.NewHandler(siteScraper, pipeline, filterer)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"listings", fmt.Sprintf("http://localhost:%s/listings", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("BizComb server shutdown complete")
}

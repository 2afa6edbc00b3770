package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"stocktracker/internal/api"
	"stocktracker/internal/config"
	"stocktracker/internal/logging"
	"stocktracker/pkg/tracker"
)

func main() {
	var configPath string
	var dataDir string
	var host string
	var port int
	var webDir string

	flag.StringVar(&configPath, "config", "", "Path to a TOML config file (optional)")
	flag.StringVar(&dataDir, "data-dir", "", "Directory holding the portfolio CSV files")
	flag.StringVar(&host, "host", "", "Host to bind the server to")
	flag.IntVar(&port, "port", -1, "Port to run the server on")
	flag.StringVar(&webDir, "web-dir", "", "Directory for browser UI static files (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if host != "" {
		cfg.Host = host
	}
	if port >= 0 {
		cfg.Port = port
	}
	if webDir != "" {
		cfg.WebDir = webDir
	}

	logger, writer, err := logging.NewLogger(cfg.LogDir(), slog.LevelInfo)
	if err != nil {
		slog.Error("failed to initialize logger", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close log writer", "err", err)
		}
	}()

	core, err := tracker.OpenWithOptions(tracker.Options{DataDir: cfg.DataDir, Logger: logger})
	if err != nil {
		logger.Error("failed to open portfolio data", "err", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}
	defer func() {
		if err := core.Close(); err != nil {
			logger.Error("failed to close portfolio data", "err", err)
		}
	}()

	handler := api.NewRouter(core, logger)
	if resolvedWebDir := resolveWebDir(cfg.WebDir); resolvedWebDir != "" {
		logger.Info("serving browser UI", "web_dir", resolvedWebDir)
		handler = api.WithUI(handler, resolvedWebDir)
	}
	handler = middleware.Compress(5)(handler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server starting", "addr", cfg.Addr(), "data_dir", cfg.DataDir)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
}

func resolveWebDir(input string) string {
	if input != "" {
		if dirExists(input) {
			return input
		}
		return ""
	}

	candidates := []string{"web/static", "../web/static", "static"}
	for _, candidate := range candidates {
		if dirExists(candidate) {
			return candidate
		}
	}
	if exe, err := os.Executable(); err == nil {
		base := filepath.Dir(exe)
		for _, candidate := range candidates {
			path := filepath.Join(base, candidate)
			if dirExists(path) {
				return path
			}
		}
	}
	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

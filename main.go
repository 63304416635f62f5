package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/JiriTill/lekarprolidi/internal/api"
	"github.com/JiriTill/lekarprolidi/internal/config"
	"github.com/JiriTill/lekarprolidi/internal/pipeline"
	"github.com/JiriTill/lekarprolidi/internal/pipeline/extract"
	"github.com/JiriTill/lekarprolidi/internal/server"
	"github.com/JiriTill/lekarprolidi/internal/summarize"
)

func main() {
	// Configure structured logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	slog.Info("Starting Lékař pro lidi daemon...")

	// Load config
	cfg := config.LoadConfig()
	slog.Info("Configuration loaded", "port", cfg.Port, "model", cfg.OpenAI.Model,
		"ocr_language", cfg.OCR.Language)

	// OCR engine loads lazily; warm it up in the background so the first
	// upload does not pay the initialization cost.
	engine := extract.NewEngine(cfg.OCR.Language)
	defer engine.Close()
	go func() {
		if err := engine.Init(); err != nil {
			slog.Warn("OCR engine unavailable - scanned documents will fail", "error", err)
		}
	}()

	// Summarization collaborator
	translator := summarize.New(cfg.OpenAI)
	if !translator.Configured() {
		slog.Warn("OPENAI_API_KEY not set - translation will fail")
	}

	// Session controller
	ctrl := pipeline.NewController(cfg, engine)

	// Build HTTP router
	r := server.NewRouter()

	// Health endpoint
	r.Get("/health", server.HealthHandler(cfg, engine, translator))

	// Mount API routers
	r.Mount("/ingest", api.IngestRouter(ctrl, cfg.Pipeline.MaxUploadBytes))
	r.Mount("/translate", api.TranslateRouter(ctrl, translator))
	r.Mount("/session", api.SessionRouter(ctrl))

	// Start HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("  Lékař pro lidi daemon\n")
	fmt.Printf("  http://%s\n", addr)
	fmt.Printf("  Model: %s\n", cfg.OpenAI.Model)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	slog.Info("Daemon ready", "addr", addr)

	// Graceful shutdown on signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	slog.Info("Daemon stopped")
}

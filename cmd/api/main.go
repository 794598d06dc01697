package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"symptom-checker/cmd"
	"symptom-checker/internal/api"
	"symptom-checker/internal/config"
	"symptom-checker/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := cmd.SetupLogFile(cfg.LogFile)
		if err != nil {
			log.Fatalf("error setting up log file: %v", err)
		}
		defer f.Close()
	}

	slog.Info("starting symptom checker", "port", cfg.Port, "provider", cfg.ModelProvider, "history_backend", cfg.HistoryBackend)

	store, err := cmd.CreateHistoryStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize history store: %v", err)
	}

	publisher := cmd.CreatePublisher(cfg)
	if publisher != nil {
		defer publisher.Close()
	}

	model := cmd.CreateModel(cfg)

	checker := core.NewSymptomChecker(model, store, publisher, cfg.ModelTimeout)

	// --- Chi Router Setup ---
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	api.NewSymptomService(checker).AddRoutes(r)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.Port, err)
	}

	log.Println("Server stopped.")
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"symptom-checker/internal/config"
	"symptom-checker/internal/database"
	"symptom-checker/internal/history"
	"symptom-checker/internal/llm"
	"symptom-checker/internal/messaging"
	"symptom-checker/internal/storage"

	"github.com/joho/godotenv"
)

func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ and .env only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

// SetupLogFile tees the standard logger, and therefore slog's default
// handler, into path. The returned file must be closed by the caller.
func SetupLogFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating directory for log file: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(f, os.Stderr))

	return f, nil
}

// CreateModel returns nil when the model client cannot be built. The server
// keeps running and rejects symptom checks until it is configured.
func CreateModel(cfg *config.Config) llm.Model {
	model, err := llm.New(cfg.ModelConfig())
	if err != nil {
		slog.Error("model client is not configured, symptom checks will be rejected", "provider", cfg.ModelProvider, "error", err)
		return nil
	}

	slog.Info("model client configured", "provider", cfg.ModelProvider)
	return model
}

func CreateHistoryStore(ctx context.Context, cfg *config.Config) (history.Store, error) {
	switch cfg.HistoryBackend {
	case config.HistoryFile:
		provider, err := storage.NewLocalProvider(filepath.Dir(cfg.HistoryFile))
		if err != nil {
			return nil, err
		}
		return history.NewDocumentStore(ctx, provider, "", filepath.Base(cfg.HistoryFile))

	case config.HistoryS3:
		provider, err := storage.NewS3Provider(&storage.S3ProviderConfig{
			S3EndpointURL:     cfg.S3EndpointURL,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
			S3Region:          cfg.S3Region,
		})
		if err != nil {
			return nil, err
		}
		return history.NewDocumentStore(ctx, provider, cfg.HistoryBucket, cfg.HistoryKey)

	case config.HistorySQLite:
		db, err := database.NewSQLiteDatabase(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return history.NewDatabaseStore(db), nil

	case config.HistoryPostgres:
		db, err := database.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return history.NewDatabaseStore(db), nil

	default:
		return nil, fmt.Errorf("invalid history backend '%s'", cfg.HistoryBackend)
	}
}

// CreatePublisher returns nil when no broker is configured.
func CreatePublisher(cfg *config.Config) messaging.Publisher {
	if cfg.RabbitMQURL == "" {
		slog.Info("RABBITMQ_URL not set, history events will not be published")
		return nil
	}

	publisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return publisher
}

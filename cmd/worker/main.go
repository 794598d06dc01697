package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"symptom-checker/cmd"
	"symptom-checker/internal/database"
	"symptom-checker/internal/history"
	"symptom-checker/internal/messaging"

	"github.com/caarlos0/env/v11"
	"gorm.io/gorm"
)

type WorkerConfig struct {
	RabbitMQURL string `env:"RABBITMQ_URL,notEmpty,required"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"MIRROR_SQLITE_PATH" envDefault:"data/history-mirror.db"`
}

func main() {
	log.Println("Starting Worker Process...")

	cmd.LoadEnvFile()

	var cfg WorkerConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	var db *gorm.DB
	var err error
	if cfg.DatabaseURL != "" {
		db, err = database.NewDatabase(cfg.DatabaseURL)
	} else {
		db, err = database.NewSQLiteDatabase(cfg.SQLitePath)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	receiver, err := messaging.NewRabbitMQReceiver(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer receiver.Close()

	worker := messaging.Worker{
		Receiver: receiver,
		Store:    history.NewDatabaseStore(db),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Worker started. Waiting for history events. Press Ctrl+C to exit.")

	worker.Run(ctx)

	log.Println("Worker stopped.")
}

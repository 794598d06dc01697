package config

import (
	"fmt"
	"log"
	"time"

	"symptom-checker/internal/llm"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	HistoryFile     = "file"
	HistoryS3       = "s3"
	HistorySQLite   = "sqlite"
	HistoryPostgres = "postgres"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"5000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	LogFile        string        `env:"LOG_FILE"`

	ModelProvider    string        `env:"MODEL_PROVIDER" envDefault:"gemini"`
	ModelTemperature float64       `env:"MODEL_TEMPERATURE" envDefault:"0"`
	ModelTimeout     time.Duration `env:"MODEL_TIMEOUT" envDefault:"50s"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-lite"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	OllamaURL   string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`

	HistoryBackend string `env:"HISTORY_BACKEND" envDefault:"file"`
	HistoryFile    string `env:"HISTORY_FILE" envDefault:"history.json"`
	HistoryBucket  string `env:"HISTORY_BUCKET" envDefault:"symptom-checker"`
	HistoryKey     string `env:"HISTORY_KEY" envDefault:"history.json"`

	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`

	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/history.db"`

	RabbitMQURL string `env:"RABBITMQ_URL"`
}

// LoadConfig reads a .env file from the working directory when one exists
// and then parses the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, continuing with environment variables")
	}

	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case HistoryFile, HistoryS3, HistorySQLite:
	case HistoryPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set when HISTORY_BACKEND is %s", HistoryPostgres)
		}
	default:
		return fmt.Errorf("invalid HISTORY_BACKEND '%s'", c.HistoryBackend)
	}

	if c.HistoryBackend == HistoryS3 && c.S3EndpointURL != "" && (c.S3AccessKeyID == "" || c.S3SecretAccessKey == "") {
		log.Println("Warning: S3_ENDPOINT_URL is set, but AWS_ACCESS_KEY_ID or AWS_SECRET_ACCESS_KEY are missing.")
	}

	return nil
}

// ModelConfig selects the key, model name and endpoint for the configured
// provider.
func (c *Config) ModelConfig() llm.Config {
	cfg := llm.Config{Provider: c.ModelProvider, Temperature: c.ModelTemperature}

	switch c.ModelProvider {
	case llm.ProviderGemini:
		cfg.APIKey = c.GeminiAPIKey
		cfg.Model = c.GeminiModel
		cfg.BaseURL = c.GeminiBaseURL
	case llm.ProviderOpenAI, llm.ProviderLangChain:
		cfg.APIKey = c.OpenAIAPIKey
		cfg.Model = c.OpenAIModel
		cfg.BaseURL = c.OpenAIBaseURL
	case llm.ProviderOllama:
		cfg.Model = c.OllamaModel
		cfg.BaseURL = c.OllamaURL
	}

	return cfg
}

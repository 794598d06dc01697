package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderLangChain = "langchain"
	ProviderOllama    = "ollama"
)

var (
	ErrMissingAPIKey = errors.New("model api key is not set")
	ErrEmptyResponse = errors.New("model returned no choices")
)

// Model is a text-in, text-out generative model.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

type loader func(cfg Config) (Model, error)

var loaders = map[string]loader{
	ProviderGemini: func(cfg Config) (Model, error) {
		return NewGemini(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	},
	ProviderOpenAI: func(cfg Config) (Model, error) {
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	},
	ProviderLangChain: func(cfg Config) (Model, error) {
		return NewLangChain(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	},
	ProviderOllama: func(cfg Config) (Model, error) {
		return NewOllama(cfg.BaseURL, cfg.Model, cfg.Temperature), nil
	},
}

func New(cfg Config) (Model, error) {
	load, ok := loaders[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported model provider '%s'", cfg.Provider)
	}
	return load(cfg)
}

package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

type Ollama struct {
	client *resty.Client
	model  string
	temp   float64
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewOllama(baseURL, model string, temp float64) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}

	return &Ollama{
		client: resty.New().SetBaseURL(baseURL),
		model:  model,
		temp:   temp,
	}
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	var result ollamaGenerateResponse

	res, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ollamaGenerateRequest{
			Model:   o.model,
			Prompt:  prompt,
			Stream:  false,
			Options: ollamaOptions{Temperature: o.temp},
		}).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		slog.Error("ollama error: generate request failed", "model", o.model, "error", err)
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}

	if !res.IsSuccess() {
		slog.Error("ollama returned error", "status_code", res.StatusCode(), "body", res.String())
		return "", fmt.Errorf("ollama generation failed with status %d", res.StatusCode())
	}

	return result.Response, nil
}

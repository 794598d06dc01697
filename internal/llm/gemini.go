package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash-lite"

type Gemini struct {
	client *genai.Client
	model  string
	temp   float64
}

func NewGemini(apiKey, baseURL, model string, temp float64) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, temp: temp}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.temp)),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		slog.Error("gemini error: generate content failed", "model", g.model, "error", err)
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return res.Text(), nil
}

package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangChain talks to any OpenAI-compatible chat endpoint (vLLM, LM Studio,
// Azure gateways) through langchaingo.
type LangChain struct {
	client *lcopenai.LLM
	model  string
	temp   float64
}

func NewLangChain(apiKey, baseURL, model string, temp float64) (*LangChain, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("langchain: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts := []lcopenai.Option{lcopenai.WithToken(apiKey), lcopenai.WithModel(model)}
	if baseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(baseURL))
	}

	client, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create langchain openai client: %w", err)
	}

	return &LangChain{client: client, model: model, temp: temp}, nil
}

func (l *LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, l.client, prompt, llms.WithTemperature(l.temp))
	if err != nil {
		slog.Error("langchain error: generate failed", "model", l.model, "error", err)
		return "", fmt.Errorf("langchain generation failed: %w", err)
	}
	return reply, nil
}

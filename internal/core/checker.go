package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"symptom-checker/internal/history"
	"symptom-checker/internal/llm"
	"symptom-checker/internal/messaging"
	"symptom-checker/pkg/api"

	"github.com/google/uuid"
)

const (
	TimestampLayout     = "2006-01-02 15:04:05"
	DefaultModelTimeout = 50 * time.Second
)

type SymptomChecker struct {
	model     llm.Model
	store     history.Store
	publisher messaging.Publisher

	modelTimeout time.Duration
	now          func() time.Time
}

// NewSymptomChecker creates a checker. A nil model leaves the checker
// unconfigured, every Check then fails with ErrNotConfigured. The publisher
// is optional.
func NewSymptomChecker(model llm.Model, store history.Store, publisher messaging.Publisher, modelTimeout time.Duration) *SymptomChecker {
	if modelTimeout <= 0 {
		modelTimeout = DefaultModelTimeout
	}
	return &SymptomChecker{
		model:        model,
		store:        store,
		publisher:    publisher,
		modelTimeout: modelTimeout,
		now:          time.Now,
	}
}

func (c *SymptomChecker) Configured() bool {
	return c.model != nil
}

func validate(req api.CheckSymptomsRequest) error {
	if req.Symptoms == nil || !req.Age.Present() || req.Gender == nil {
		return &ValidationError{Reason: ReasonInvalidInput}
	}
	if strings.TrimSpace(*req.Symptoms) == "" || !req.Age.Truthy() || *req.Gender == "" {
		return &ValidationError{Reason: ReasonFieldsRequired}
	}
	return nil
}

func (c *SymptomChecker) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.modelTimeout)
	defer cancel()

	reply, err := c.model.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: timed out after %v: %w", ErrModel, c.modelTimeout, err)
		}
		return "", fmt.Errorf("%w: %w", ErrModel, err)
	}
	return reply, nil
}

// Check runs one symptom check: validate, prompt the model, parse its reply,
// record it in the history log and return the analysis. The configuration
// check happens before validation.
func (c *SymptomChecker) Check(ctx context.Context, req api.CheckSymptomsRequest) (api.StructuredAnalysis, error) {
	if !c.Configured() {
		return api.StructuredAnalysis{}, ErrNotConfigured
	}

	if err := validate(req); err != nil {
		return api.StructuredAnalysis{}, err
	}

	prompt := BuildPrompt(*req.Symptoms, req.Age, *req.Gender)

	start := time.Now()
	reply, err := c.generate(ctx, prompt)
	if err != nil {
		return api.StructuredAnalysis{}, err
	}
	slog.Info("model reply received", "duration", time.Since(start), "reply_len", len(reply))

	analysis := ParseSections(reply)

	record := api.HistoryRecord{
		Symptoms:  *req.Symptoms,
		Age:       req.Age,
		Gender:    *req.Gender,
		Analysis:  analysis,
		Timestamp: c.now().Format(TimestampLayout),
	}

	if err := c.store.Prepend(ctx, record); err != nil {
		if !errors.Is(err, ErrStorage) {
			err = fmt.Errorf("%w: %w", ErrStorage, err)
		}
		return api.StructuredAnalysis{}, err
	}

	if c.publisher != nil {
		payload := messaging.HistoryRecordedPayload{EventId: uuid.New(), Record: record}
		if err := c.publisher.PublishHistoryRecorded(ctx, payload); err != nil {
			slog.Error("error publishing history event", "event_id", payload.EventId, "error", err)
		}
	}

	return analysis, nil
}

// History returns the full log, newest first. Store failures are logged and
// reported as an empty log.
func (c *SymptomChecker) History(ctx context.Context) []api.HistoryRecord {
	records, err := c.store.LoadAll(ctx)
	if err != nil {
		slog.Error("error loading history", "error", err)
		return []api.HistoryRecord{}
	}
	if records == nil {
		return []api.HistoryRecord{}
	}
	return records
}

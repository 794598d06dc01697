package api

import (
	"errors"
	"log/slog"
	"net/http"

	"symptom-checker/internal/core"
	"symptom-checker/pkg/api"

	"github.com/go-chi/chi/v5"
)

const (
	MsgNotConfigured   = "Model API is not configured. Please check server logs."
	MsgProcessingError = "An error occurred while processing your request."
)

type SymptomService struct {
	checker *core.SymptomChecker
}

func NewSymptomService(checker *core.SymptomChecker) *SymptomService {
	return &SymptomService{checker: checker}
}

func (s *SymptomService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/check_symptoms", RestHandler(s.CheckSymptoms))
	r.Get("/history", RestHandler(s.History))
}

func (s *SymptomService) CheckSymptoms(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CheckSymptomsRequest](r)
	if err != nil {
		// An unreadable body is reported the same way as missing fields, and
		// only after the configuration check inside Check.
		req = api.CheckSymptomsRequest{}
	}

	analysis, err := s.checker.Check(r.Context(), req)
	if err != nil {
		var verr *core.ValidationError
		switch {
		case errors.Is(err, core.ErrNotConfigured):
			return nil, CodedError(http.StatusInternalServerError, errors.New(MsgNotConfigured))
		case errors.As(err, &verr):
			return nil, CodedError(http.StatusBadRequest, verr)
		default:
			slog.Error("error processing symptom check", "error", err)
			return nil, CodedError(http.StatusInternalServerError, errors.New(MsgProcessingError))
		}
	}

	return analysis, nil
}

type HistoryParams struct {
	Limit int `schema:"limit"`
}

// History returns the log newest first. A positive limit returns only that
// many of the most recent records; an unusable limit is ignored.
func (s *SymptomService) History(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[HistoryParams](r)
	if err != nil {
		slog.Warn("ignoring invalid history query params", "query", r.URL.RawQuery)
		params = HistoryParams{}
	}

	records := s.checker.History(r.Context())
	if params.Limit > 0 && params.Limit < len(records) {
		records = records[:params.Limit]
	}

	return records, nil
}

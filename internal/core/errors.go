package core

import (
	"errors"

	"symptom-checker/internal/history"
)

var (
	ErrNotConfigured = errors.New("model client is not configured")
	ErrModel         = errors.New("model call failed")
	ErrStorage       = history.ErrStorage
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

const (
	ReasonInvalidInput   = "Invalid input. 'symptoms', 'age', and 'gender' fields are required."
	ReasonFieldsRequired = "All fields are required."
)

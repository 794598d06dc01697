package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const NoInformation = "No information provided."

type StructuredAnalysis struct {
	GivenSymptoms            string `json:"given_symptoms"`
	PossibleCauses           string `json:"possible_causes"`
	Cure                     string `json:"cure"`
	PrecautionsOrPreventions string `json:"precautions_or_preventions"`
	ExpertAdvice             string `json:"expert_advice"`
	EmergencyLevel           string `json:"emergency_level"`
}

func DefaultAnalysis() StructuredAnalysis {
	return StructuredAnalysis{
		GivenSymptoms:            NoInformation,
		PossibleCauses:           NoInformation,
		Cure:                     NoInformation,
		PrecautionsOrPreventions: NoInformation,
		ExpertAdvice:             NoInformation,
		EmergencyLevel:           NoInformation,
	}
}

// Age holds the submitted age as the raw JSON value so that numbers and
// strings are both persisted exactly as they were sent.
type Age json.RawMessage

func (a Age) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return []byte(a), nil
}

func (a *Age) UnmarshalJSON(data []byte) error {
	*a = append((*a)[0:0], data...)
	return nil
}

// Present reports whether the field appeared in the request body at all.
func (a Age) Present() bool {
	return len(a) > 0
}

// Truthy follows JSON truthiness: null, false, 0, "", [] and {} are empty.
func (a Age) Truthy() bool {
	raw := bytes.TrimSpace(a)
	if len(raw) == 0 {
		return false
	}

	switch raw[0] {
	case 'n', 'f':
		return false
	case 't':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	case '[':
		var v []json.RawMessage
		if err := json.Unmarshal(raw, &v); err != nil {
			return false
		}
		return len(v) > 0
	case '{':
		var v map[string]json.RawMessage
		if err := json.Unmarshal(raw, &v); err != nil {
			return false
		}
		return len(v) > 0
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return false
		}
		return f != 0
	}
}

func (a Age) String() string {
	raw := bytes.TrimSpace(a)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

type CheckSymptomsRequest struct {
	Symptoms *string `json:"symptoms"`
	Age      Age     `json:"age"`
	Gender   *string `json:"gender"`
}

type HistoryRecord struct {
	Symptoms  string             `json:"symptoms"`
	Age       Age                `json:"age"`
	Gender    string             `json:"gender"`
	Analysis  StructuredAnalysis `json:"analysis"`
	Timestamp string             `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package history

import (
	"context"
	"errors"

	"symptom-checker/pkg/api"
)

var ErrStorage = errors.New("history storage failure")

// Store is the persisted log of completed symptom checks, newest first.
// Implementations serialize LoadAll and Prepend so that concurrent callers
// never lose a record.
type Store interface {
	// LoadAll returns every record, most recent first. Missing or
	// undecodable state yields an empty slice.
	LoadAll(ctx context.Context) ([]api.HistoryRecord, error)

	// Prepend makes record the new first element of the log.
	Prepend(ctx context.Context, record api.HistoryRecord) error
}

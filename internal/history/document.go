package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"symptom-checker/internal/storage"
	"symptom-checker/pkg/api"
)

const DefaultDocumentKey = "history.json"

// DocumentStore keeps the whole log as a single JSON array object in a
// storage.Provider. Every Prepend rewrites the complete document.
type DocumentStore struct {
	provider storage.Provider
	bucket   string
	key      string

	mu sync.Mutex
}

var _ Store = &DocumentStore{}

func NewDocumentStore(ctx context.Context, provider storage.Provider, bucket, key string) (*DocumentStore, error) {
	if key == "" {
		key = DefaultDocumentKey
	}

	if err := provider.CreateBucket(ctx, bucket); err != nil {
		return nil, fmt.Errorf("error creating history bucket: %w", err)
	}

	return &DocumentStore{provider: provider, bucket: bucket, key: key}, nil
}

func (s *DocumentStore) load(ctx context.Context) ([]api.HistoryRecord, error) {
	data, err := s.provider.GetObject(ctx, s.bucket, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return []api.HistoryRecord{}, nil
		}
		return nil, fmt.Errorf("%w: error reading history document: %w", ErrStorage, err)
	}

	var records []api.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("history document could not be decoded, treating it as empty", "bucket", s.bucket, "key", s.key, "error", err)
		return []api.HistoryRecord{}, nil
	}

	if records == nil {
		records = []api.HistoryRecord{}
	}

	return records, nil
}

func (s *DocumentStore) LoadAll(ctx context.Context) ([]api.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *DocumentStore) Prepend(ctx context.Context, record api.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	records = append([]api.HistoryRecord{record}, records...)

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: error serializing history: %w", ErrStorage, err)
	}

	if err := s.provider.PutObject(ctx, s.bucket, s.key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: error writing history document: %w", ErrStorage, err)
	}

	return nil
}

package history

import (
	"context"
	"fmt"
	"sync"

	"symptom-checker/internal/database"
	"symptom-checker/pkg/api"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseStore keeps one row per record. SQLite only supports one writer at
// a time, so all access goes through mu.
type DatabaseStore struct {
	db *gorm.DB
	mu sync.Mutex
}

var _ Store = &DatabaseStore{}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) LoadAll(ctx context.Context) ([]api.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []database.HistoryEntry
	if err := s.db.WithContext(ctx).Order("seq DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("%w: error listing history entries: %w", ErrStorage, err)
	}

	records := make([]api.HistoryRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, api.HistoryRecord{
			Symptoms:  entry.Symptoms,
			Age:       api.Age(entry.Age),
			Gender:    entry.Gender,
			Analysis:  entry.Analysis.Data(),
			Timestamp: entry.Timestamp,
		})
	}

	return records, nil
}

func (s *DatabaseStore) Prepend(ctx context.Context, record api.HistoryRecord) error {
	age, err := record.Age.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: error serializing age: %w", ErrStorage, err)
	}

	entry := database.HistoryEntry{
		Id:        uuid.New(),
		Symptoms:  record.Symptoms,
		Age:       string(age),
		Gender:    record.Gender,
		Analysis:  datatypes.NewJSONType(record.Analysis),
		Timestamp: record.Timestamp,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("%w: error saving history entry: %w", ErrStorage, err)
	}

	return nil
}

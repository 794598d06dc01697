package database

import (
	"symptom-checker/pkg/api"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HistoryEntry is one recorded symptom check. Seq gives the insertion order,
// newest entries have the highest Seq.
type HistoryEntry struct {
	Seq uint64    `gorm:"primaryKey;autoIncrement"`
	Id  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Symptoms string `gorm:"not null"`
	// Age is kept as the raw JSON value the client sent.
	Age    string `gorm:"not null"`
	Gender string `gorm:"not null"`

	Analysis  datatypes.JSONType[api.StructuredAnalysis] `gorm:"not null"`
	Timestamp string                                     `gorm:"size:19;not null"`
}

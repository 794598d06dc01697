package migration_0

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HistoryEntry struct {
	Seq uint64    `gorm:"primaryKey;autoIncrement"`
	Id  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Symptoms string `gorm:"not null"`
	Age      string `gorm:"not null"`
	Gender   string `gorm:"not null"`

	Analysis  datatypes.JSON `gorm:"not null"`
	Timestamp string         `gorm:"size:19;not null"`
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&HistoryEntry{}); err != nil {
		return fmt.Errorf("error creating history_entries table: %w", err)
	}
	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&HistoryEntry{}); err != nil {
		return fmt.Errorf("error dropping history_entries table: %w", err)
	}
	return nil
}

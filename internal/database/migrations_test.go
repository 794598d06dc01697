package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrationsCreateHistoryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, GetMigrator(db).Migrate())
	assert.True(t, db.Migrator().HasTable(&HistoryEntry{}))

	// running again on an up to date database is a no-op
	require.NoError(t, GetMigrator(db).Migrate())
}

func TestMigrationRollback(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	migrator := GetMigrator(db)
	require.NoError(t, migrator.Migrate())
	require.NoError(t, migrator.RollbackLast())
	assert.False(t, db.Migrator().HasTable(&HistoryEntry{}))
}

func TestNewSQLiteDatabase(t *testing.T) {
	db, err := NewSQLiteDatabase(t.TempDir() + "/data/history.db")
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&HistoryEntry{}))
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	FolderRepo folders.FolderRepository
	ItemRepo   items.ItemRepository
}

// SetupTestDB initializes an in-memory SQLite database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	err = MigrateSchema(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	folderRepo, err := NewGormFolderRepository(db, logger)
	require.NoError(t, err, "Failed to create folder repository")

	itemRepo, err := NewGormItemRepository(db, logger)
	require.NoError(t, err, "Failed to create item repository")

	return &TestContext{
		DB:         db,
		FolderRepo: folderRepo,
		ItemRepo:   itemRepo,
	}
}

// CreateTestFolder creates and persists a folder with the given name
func CreateTestFolder(t *testing.T, ctx *TestContext, name string) *folders.Folder {
	t.Helper()

	folder := &folders.Folder{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, ctx.FolderRepo.Create(context.Background(), folder))
	require.Greater(t, folder.ID, int64(0))

	return folder
}

// NewTestItem builds an item with default values, not yet persisted
func NewTestItem(t *testing.T, folderID int64, name string) *items.Item {
	t.Helper()

	return &items.Item{
		FolderID:  folderID,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// CreateTestItem creates and persists an item with default values
func CreateTestItem(t *testing.T, ctx *TestContext, folderID int64, name string) *items.Item {
	t.Helper()

	item := NewTestItem(t, folderID, name)
	require.NoError(t, ctx.ItemRepo.Create(context.Background(), item))
	require.Greater(t, item.ID, int64(0))

	return item
}

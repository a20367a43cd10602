//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ServiceTestContext holds test database and services
type ServiceTestContext struct {
	DB            *gorm.DB
	FolderService folders.FolderService
	ItemService   items.ItemService
}

// SetupTestServices wires repositories and services over an in-memory SQLite database
func SetupTestServices(t *testing.T) *ServiceTestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := persistence.NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = persistence.CloseDB(db)
	})

	require.NoError(t, persistence.MigrateSchema(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	folderRepo, err := persistence.NewGormFolderRepository(db, log)
	require.NoError(t, err)

	itemRepo, err := persistence.NewGormItemRepository(db, log)
	require.NoError(t, err)

	folderService, err := NewFolderService(folderRepo, log)
	require.NoError(t, err)

	itemService, err := NewItemService(itemRepo, log)
	require.NoError(t, err)

	return &ServiceTestContext{
		DB:            db,
		FolderService: folderService,
		ItemService:   itemService,
	}
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence/models"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestNewDBConnection_EmptySqliteDSNDefaultsToMemory(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = CloseDB(db)
	})
	require.NoError(t, MigrateSchema(db))

	var count int64
	require.NoError(t, db.Model(&models.FolderModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

// The in-memory store must be the same database for every connection of
// one handle; a plain ":memory:" DSN would hand each pooled connection
// its own empty database and fail with "no such table" under load.
func TestSqliteInMemory_SharedAcrossPool(t *testing.T) {
	ctx := SetupTestDB(t)
	CreateTestFolder(t, ctx, "Farm A")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := ctx.FolderRepo.List(context.Background())
			if err == nil && len(list) != 1 {
				err = gorm.ErrRecordNotFound
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// Separate handles get separate in-memory databases.
func TestSqliteInMemory_HandlesAreIsolated(t *testing.T) {
	first := SetupTestDB(t)
	second := SetupTestDB(t)

	CreateTestFolder(t, first, "Farm A")

	list, err := second.FolderRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

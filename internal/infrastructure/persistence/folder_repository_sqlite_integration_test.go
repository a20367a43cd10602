//go:build integration
// +build integration

package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence/models"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFolderSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t)

	folder := CreateTestFolder(t, ctx, "Farm A")

	var created models.FolderModel
	err := ctx.DB.First(&created, "id = ?", folder.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "Farm A", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestFolderSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t)

	invalidFolder := &folders.Folder{Name: "   ", CreatedAt: time.Now()}

	err := ctx.FolderRepo.Create(context.Background(), invalidFolder)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")

	var count int64
	require.NoError(t, ctx.DB.Model(&models.FolderModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFolderSqliteRepository_List_OrderedByRecency(t *testing.T) {
	ctx := SetupTestDB(t)

	older := &folders.Folder{Name: "older", CreatedAt: time.Now().Add(-2 * time.Hour)}
	newer := &folders.Folder{Name: "newer", CreatedAt: time.Now().Add(-1 * time.Hour)}
	require.NoError(t, ctx.FolderRepo.Create(context.Background(), older))
	require.NoError(t, ctx.FolderRepo.Create(context.Background(), newer))

	list, err := ctx.FolderRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Name)
	assert.Equal(t, "older", list[1].Name)
}

func TestFolderSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t)

	folder := CreateTestFolder(t, ctx, "before")

	require.NoError(t, ctx.FolderRepo.UpdateByID(context.Background(), folder.ID, "after"))

	var updated models.FolderModel
	require.NoError(t, ctx.DB.First(&updated, "id = ?", folder.ID).Error)
	assert.Equal(t, "after", updated.Name)
}

func TestFolderSqliteRepository_UpdateByID_NonexistentSucceeds(t *testing.T) {
	ctx := SetupTestDB(t)

	// No existence check: zero rows affected is still a success.
	err := ctx.FolderRepo.UpdateByID(context.Background(), 424242, "ghost")
	assert.NoError(t, err)
}

func TestFolderSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t)

	folder := CreateTestFolder(t, ctx, "doomed")

	require.NoError(t, ctx.FolderRepo.DeleteByID(context.Background(), folder.ID))

	var deleted models.FolderModel
	err := ctx.DB.First(&deleted, "id = ?", folder.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFolderSqliteRepository_DeleteByID_CascadesToItems(t *testing.T) {
	ctx := SetupTestDB(t)

	folder := CreateTestFolder(t, ctx, "Farm A")
	other := CreateTestFolder(t, ctx, "Farm B")

	CreateTestItem(t, ctx, folder.ID, "Tractor")
	CreateTestItem(t, ctx, folder.ID, "Plough")
	survivor := CreateTestItem(t, ctx, other.ID, "Harvester")

	require.NoError(t, ctx.FolderRepo.DeleteByID(context.Background(), folder.ID))

	var count int64
	require.NoError(t, ctx.DB.Model(&models.ItemModel{}).Where("folder_id = ?", folder.ID).Count(&count).Error)
	assert.Zero(t, count, "items of the deleted folder must not outlive it")

	// Items of other folders are untouched.
	remaining, err := ctx.ItemRepo.ListByFolder(context.Background(), other.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)
}

// SQLite enforces foreign keys per connection, so the cascade must hold
// on connections opened after the one that ran the migration.
func TestFolderSqliteRepository_DeleteByID_CascadesOnFreshConnection(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  filepath.Join(t.TempDir(), "farmersdata.db"),
	}
	db, err := NewDBConnection(settings)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = CloseDB(db)
	})
	require.NoError(t, MigrateSchema(db))

	folderRepo, err := NewGormFolderRepository(db, log)
	require.NoError(t, err)
	itemRepo, err := NewGormItemRepository(db, log)
	require.NoError(t, err)

	folder := &folders.Folder{Name: "Farm A", CreatedAt: time.Now().UTC()}
	require.NoError(t, folderRepo.Create(context.Background(), folder))
	require.NoError(t, itemRepo.Create(context.Background(), NewTestItem(t, folder.ID, "Tractor")))

	// Retire the pooled connection that created the rows so the delete
	// lands on a freshly opened one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	require.NoError(t, folderRepo.DeleteByID(context.Background(), folder.ID))

	var count int64
	require.NoError(t, db.Model(&models.ItemModel{}).Where("folder_id = ?", folder.ID).Count(&count).Error)
	assert.Zero(t, count, "items of the deleted folder must not outlive it")
}

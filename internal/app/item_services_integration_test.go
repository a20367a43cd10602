//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(folderID int64, name string) *items.Item {
	return &items.Item{
		FolderID: folderID,
		Name:     name,
		IsActive: true,
	}
}

func TestItemService_CreateAndListByFolder(t *testing.T) {
	ctx := SetupTestServices(t)

	folder, err := ctx.FolderService.Create(context.Background(), "Farm A")
	require.NoError(t, err)

	created, err := ctx.ItemService.Create(context.Background(), newTestItem(folder.ID, "Tractor"))
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.False(t, created.CreatedAt.IsZero())

	list, err := ctx.ItemService.ListByFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tractor", list[0].Name)
	assert.Empty(t, list[0].Description)
	assert.True(t, list[0].IsActive)
	assert.False(t, list[0].IsVerified)
}

func TestItemService_UpdateRoundTrip(t *testing.T) {
	ctx := SetupTestServices(t)

	folder, err := ctx.FolderService.Create(context.Background(), "Farm A")
	require.NoError(t, err)

	created, err := ctx.ItemService.Create(context.Background(), newTestItem(folder.ID, "Tractor"))
	require.NoError(t, err)

	_, err = ctx.ItemService.Update(context.Background(), &items.Item{
		ID:          created.ID,
		Name:        "Combine",
		Location:    "north field",
		IsActive:    true,
		IsVerified:  true,
		Description: "green",
	})
	require.NoError(t, err)

	list, err := ctx.ItemService.ListByFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, folder.ID, got.FolderID)
	assert.Equal(t, "Combine", got.Name)
	assert.Equal(t, "north field", got.Location)
	assert.Equal(t, "green", got.Description)
	assert.True(t, got.IsVerified)
}

func TestItemService_Search_EnrichedWithFolderName(t *testing.T) {
	ctx := SetupTestServices(t)

	folder, err := ctx.FolderService.Create(context.Background(), "Farm A")
	require.NoError(t, err)

	_, err = ctx.ItemService.Create(context.Background(), newTestItem(folder.ID, "Tractor"))
	require.NoError(t, err)

	results, err := ctx.ItemService.Search(context.Background(), "Tract")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tractor", results[0].Name)
	assert.Equal(t, "Farm A", results[0].FolderName)
}

func TestItemService_Delete(t *testing.T) {
	ctx := SetupTestServices(t)

	folder, err := ctx.FolderService.Create(context.Background(), "Farm A")
	require.NoError(t, err)

	created, err := ctx.ItemService.Create(context.Background(), newTestItem(folder.ID, "Tractor"))
	require.NoError(t, err)

	require.NoError(t, ctx.ItemService.Delete(context.Background(), created.ID))

	list, err := ctx.ItemService.ListByFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

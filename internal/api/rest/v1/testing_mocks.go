//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"

	"github.com/stretchr/testify/mock"
)

// MockFolderService is a testify mock of folders.FolderService
type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) List(ctx context.Context) ([]*folders.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*folders.Folder), args.Error(1)
}

func (m *MockFolderService) Create(ctx context.Context, name string) (*folders.Folder, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folders.Folder), args.Error(1)
}

func (m *MockFolderService) Update(ctx context.Context, id int64, name string) (*folders.Folder, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folders.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemService is a testify mock of items.ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ListByFolder(ctx context.Context, folderID int64) ([]*items.Item, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*items.Item), args.Error(1)
}

func (m *MockItemService) Create(ctx context.Context, item *items.Item) (*items.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, item *items.Item) (*items.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemService) Search(ctx context.Context, query string) ([]*items.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*items.SearchResult), args.Error(1)
}

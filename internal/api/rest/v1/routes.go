package v1

import (
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"

	"github.com/gin-gonic/gin"
)

// BasePath is the prefix of all API routes.
const BasePath = "/api"

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	folderService folders.FolderService,
	itemService items.ItemService) {

	api := r.Group(BasePath)

	// Folder routes
	folderHandler := NewFolderHandler(folderService)
	api.GET("/folders", folderHandler.List)
	api.POST("/folders", folderHandler.Create)
	api.PUT("/folders/:id", folderHandler.Update)
	api.DELETE("/folders/:id", folderHandler.Delete)

	// Item routes
	itemHandler := NewItemHandler(itemService)
	api.GET("/folders/:folderId/items", itemHandler.ListByFolder)
	api.POST("/items", itemHandler.Create)
	api.PUT("/items/:id", itemHandler.Update)
	api.DELETE("/items/:id", itemHandler.Delete)
	api.GET("/search", itemHandler.Search)
}

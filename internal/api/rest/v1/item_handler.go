package v1

import (
	"net/http"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"

	"github.com/gin-gonic/gin"
)

// ItemHandler defines the interface for handling item-related operations
type ItemHandler interface {
	ListByFolder(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Search(ctx *gin.Context)
}

// itemHandler struct holds the item service
type itemHandler struct {
	itemService items.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService items.ItemService) ItemHandler {
	return &itemHandler{
		itemService: itemService,
	}
}

// ListByFolder returns all items of a folder, newest first
func (handler *itemHandler) ListByFolder(ctx *gin.Context) {
	folderID, err := parseID(ctx.Param("folderId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	itemList, err := handler.itemService.ListByFolder(ctx, folderID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	listResponse := make([]ItemResponse, 0, len(itemList))
	for _, item := range itemList {
		listResponse = append(listResponse, newItemResponse(item))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create creates an item from the request body with defaults applied
func (handler *itemHandler) Create(ctx *gin.Context) {
	var request CreateItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "folder_id and name are required"})
		return
	}

	item, err := handler.itemService.Create(ctx, request.toItem())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newItemResponse(item))
}

// Update replaces an item's mutable fields by id
func (handler *itemHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var request UpdateItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	item, err := handler.itemService.Update(ctx, request.toItem(id))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ItemUpdateResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		ContactInfo: item.ContactInfo,
		Location:    item.Location,
		IsActive:    item.IsActive,
		IsVerified:  item.IsVerified,
		Notes:       item.Notes,
	})
}

// Delete removes an item by id
func (handler *itemHandler) Delete(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := handler.itemService.Delete(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// Search matches the query against name, description, contact_info,
// location and notes, any of the five
func (handler *itemHandler) Search(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "query is required"})
		return
	}

	results, err := handler.itemService.Search(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	searchResponse := make([]SearchItemResponse, 0, len(results))
	for _, result := range results {
		searchResponse = append(searchResponse, newSearchItemResponse(result))
	}

	ctx.JSON(http.StatusOK, searchResponse)
}

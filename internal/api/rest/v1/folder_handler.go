package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"

	"github.com/gin-gonic/gin"
)

// FolderHandler defines the interface for handling folder-related operations
type FolderHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// folderHandler struct holds the folder service
type folderHandler struct {
	folderService folders.FolderService
}

// NewFolderHandler creates a new FolderHandler
func NewFolderHandler(folderService folders.FolderService) FolderHandler {
	return &folderHandler{
		folderService: folderService,
	}
}

// List returns all folders, newest first
func (handler *folderHandler) List(ctx *gin.Context) {
	folderList, err := handler.folderService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	listResponse := make([]FolderResponse, 0, len(folderList))
	for _, folder := range folderList {
		listResponse = append(listResponse, newFolderResponse(folder))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create creates a folder from the request body
func (handler *folderHandler) Create(ctx *gin.Context) {
	var request CreateFolderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	folder, err := handler.folderService.Create(ctx, request.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, FolderMutationResponse{ID: folder.ID, Name: folder.Name})
}

// Update replaces a folder's name by id
func (handler *folderHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var request UpdateFolderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	folder, err := handler.folderService.Update(ctx, id, request.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, FolderMutationResponse{ID: folder.ID, Name: folder.Name})
}

// Delete removes a folder by id, cascading to its items
func (handler *folderHandler) Delete(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := handler.folderService.Delete(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Folder deleted"})
}

// parseID parses a path parameter into a numeric surrogate key.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

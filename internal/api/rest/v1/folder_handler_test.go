//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFolderHandler_List_Success(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.
		On("List", mock.Anything).
		Return([]*folders.Folder{
			{ID: 1, Name: "Farm A", CreatedAt: time.Now()},
			{ID: 2, Name: "Farm B", CreatedAt: time.Now()},
		}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/folders", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Farm A")
	assert.Contains(t, w.Body.String(), "Farm B")
	mockFolderService.AssertExpectations(t)
}

func TestFolderHandler_List_StorageError(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.
		On("List", mock.Anything).
		Return(nil, errors.New("database is locked"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/folders", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database is locked")
	mockFolderService.AssertExpectations(t)
}

func TestFolderHandler_Create_Success(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.
		On("Create", mock.Anything, "Farm A").
		Return(&folders.Folder{ID: 1, Name: "Farm A", CreatedAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/folders", bytes.NewBufferString(`{"name": "Farm A"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	// The create body carries id and name only, no timestamp.
	assert.JSONEq(t, `{"id": 1, "name": "Farm A"}`, w.Body.String())
	mockFolderService.AssertExpectations(t)
}

func TestFolderHandler_Create_MissingName(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty name", `{"name": ""}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/folders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}

	// The service must never be reached on validation failures.
	mockFolderService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFolderHandler_Update_Success(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.
		On("Update", mock.Anything, int64(7), "renamed").
		Return(&folders.Folder{ID: 7, Name: "renamed"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/folders/7", bytes.NewBufferString(`{"name": "renamed"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "7"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 7, "name": "renamed"}`, w.Body.String())
	mockFolderService.AssertExpectations(t)
}

func TestFolderHandler_Update_InvalidID(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/folders/abc", bytes.NewBufferString(`{"name": "renamed"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFolderService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFolderHandler_Delete_Success(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.On("Delete", mock.Anything, int64(7)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/folders/7", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "7"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Folder deleted"}`, w.Body.String())
	mockFolderService.AssertExpectations(t)
}

func TestFolderHandler_Delete_StorageError(t *testing.T) {
	mockFolderService := new(MockFolderService)
	handler := NewFolderHandler(mockFolderService)

	mockFolderService.On("Delete", mock.Anything, int64(7)).Return(errors.New("disk I/O error"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/folders/7", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "7"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockFolderService.AssertExpectations(t)
}

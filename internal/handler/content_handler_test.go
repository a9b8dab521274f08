package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/domain"
	"hackfest/internal/events"
	"hackfest/internal/handler"
	"hackfest/mocks"
)

func TestContentHandler_List_Success(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent, events.NewBus())

	items := []domain.Item{
		{ID: uuid.New(), Name: "Ada", ImageURL: "https://cdn.example.com/ada.png"},
	}
	mockContent.On("PublicList", mock.Anything, "guests").Return(items, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/content/guests", nil)
	c.Params = gin.Params{{Key: "collection", Value: "guests"}}

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    []domain.Item `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Ada", resp.Data[0].Name)
}

func TestContentHandler_List_EmptyCollection(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent, events.NewBus())

	mockContent.On("PublicList", mock.Anything, "sponsors").Return([]domain.Item{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/content/sponsors", nil)
	c.Params = gin.Params{{Key: "collection", Value: "sponsors"}}

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestContentHandler_List_UnknownCollection(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent, events.NewBus())

	mockContent.On("PublicList", mock.Anything, "speakers").Return(nil, domain.ErrUnknownCollection)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/content/speakers", nil)
	c.Params = gin.Params{{Key: "collection", Value: "speakers"}}

	h.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNKNOWN_COLLECTION", resp.Error.Code)
}

func TestContentHandler_Events_UnknownCollection(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent, events.NewBus())

	mockContent.On("PublicList", mock.Anything, "speakers").Return(nil, domain.ErrUnknownCollection)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/content/speakers/events", nil)
	c.Params = gin.Params{{Key: "collection", Value: "speakers"}}

	h.Events(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

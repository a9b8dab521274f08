package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/handler"
	"hackfest/internal/port"
	"hackfest/mocks"
)

func TestContactHandler_Submit(t *testing.T) {
	mockSender := new(mocks.MockEmailSender)
	h := handler.NewContactHandler(mockSender)

	mockSender.On("SendContactMessage", mock.Anything, port.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "How do I register my team?",
	}).Return(nil)

	body, _ := json.Marshal(map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "How do I register my team?",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSender.AssertExpectations(t)
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	mockSender := new(mocks.MockEmailSender)
	h := handler.NewContactHandler(mockSender)

	body, _ := json.Marshal(map[string]string{"name": "Ada"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSender.AssertNotCalled(t, "SendContactMessage")
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	mockSender := new(mocks.MockEmailSender)
	h := handler.NewContactHandler(mockSender)

	body, _ := json.Marshal(map[string]string{
		"name":    "Ada",
		"email":   "not-an-email",
		"message": "hello",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSender.AssertNotCalled(t, "SendContactMessage")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/port"
)

// ContactHandler handles the landing page contact form.
type ContactHandler struct {
	sender port.EmailSender
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(sender port.EmailSender) *ContactHandler {
	return &ContactHandler{sender: sender}
}

// Submit handles POST /api/v1/contact
// @Summary Submit a contact message
// @Description Delivers a visitor message to the organizing team
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Missing fields"
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, email, and message are required")
		return
	}

	err := h.sender.SendContactMessage(c.Request.Context(), port.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"sent": true})
}

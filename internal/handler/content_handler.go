package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"hackfest/internal/events"
	"hackfest/internal/service"
)

// ContentHandler serves the public, read-only content endpoints.
type ContentHandler struct {
	contentService service.ContentService
	bus            *events.Bus
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService, bus *events.Bus) *ContentHandler {
	return &ContentHandler{contentService: contentService, bus: bus}
}

// List handles GET /api/v1/content/:collection
// @Summary Public view of a collection
// @Description Rows with a populated image, in display order, capped per collection. Empty list means the section renders nothing.
// @Tags content
// @Produce json
// @Param collection path string true "Collection name" Enums(guests, mentors, judges, workshops, sponsors, ventures)
// @Success 200 {object} APIResponse{data=[]domain.Item}
// @Failure 404 {object} APIResponse "Unknown collection"
// @Router /content/{collection} [get]
func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.contentService.PublicList(c.Request.Context(), c.Param("collection"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// Events handles GET /api/v1/content/:collection/events
// @Summary Change feed for a collection
// @Description Server-sent events; one event per insert/update/delete. Clients re-fetch the collection on receipt.
// @Tags content
// @Produce text/event-stream
// @Param collection path string true "Collection name"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} APIResponse "Unknown collection"
// @Router /content/{collection}/events [get]
func (h *ContentHandler) Events(c *gin.Context) {
	collection := c.Param("collection")
	// Reject unknown collections before committing to the stream.
	if _, err := h.contentService.PublicList(c.Request.Context(), collection); err != nil {
		HandleError(c, err)
		return
	}

	ch, cancel := h.bus.Subscribe(collection)
	defer cancel()

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Client disconnect cancels the request context, tearing the
	// subscription down; no state outlives the request.
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

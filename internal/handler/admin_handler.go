package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hackfest/internal/domain"
	"hackfest/internal/export"
	"hackfest/internal/service"
)

// AdminHandler handles the authoring endpoints behind the allow-list.
type AdminHandler struct {
	contentService service.ContentService
	mediaService   service.MediaService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(contentService service.ContentService, mediaService service.MediaService) *AdminHandler {
	return &AdminHandler{contentService: contentService, mediaService: mediaService}
}

// List handles GET /api/v1/admin/content/:collection
// @Summary Full row set of a collection
// @Description Every row, ordered, including rows without media
// @Tags admin
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} APIResponse{data=[]domain.Item}
// @Failure 404 {object} APIResponse "Unknown collection"
// @Security BearerAuth
// @Router /admin/content/{collection} [get]
func (h *AdminHandler) List(c *gin.Context) {
	items, err := h.contentService.AdminList(c.Request.Context(), c.Param("collection"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// Create handles POST /api/v1/admin/content/:collection
// @Summary Create a row
// @Description Multipart form: row fields plus an optional image file. The image is uploaded first; if the upload fails the row is not created. Responds with the re-fetched, ordered collection.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param collection path string true "Collection name"
// @Param image formData file false "Image or logo"
// @Param name formData string false "Name"
// @Param title formData string false "Title"
// @Param subtitle formData string false "Subtitle"
// @Param description formData string false "Description"
// @Param highlights formData string false "Comma-separated highlights"
// @Param link_url formData string false "External link"
// @Param sort_order formData int false "Display order"
// @Success 201 {object} APIResponse{data=[]domain.Item}
// @Failure 400 {object} APIResponse "Invalid fields or file"
// @Failure 404 {object} APIResponse "Unknown collection"
// @Security BearerAuth
// @Router /admin/content/{collection} [post]
func (h *AdminHandler) Create(c *gin.Context) {
	collection := c.Param("collection")

	input := service.InsertItemInput{
		Collection:  collection,
		Name:        c.PostForm("name"),
		Title:       c.PostForm("title"),
		Subtitle:    c.PostForm("subtitle"),
		Description: c.PostForm("description"),
		Highlights:  splitHighlights(c.PostForm("highlights")),
		LinkURL:     c.PostForm("link_url"),
	}
	if raw := c.PostForm("sort_order"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_SORT_ORDER", "sort_order must be a number")
			return
		}
		input.SortOrder = &n
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer func() { _ = file.Close() }()
		url, upErr := h.mediaService.Upload(c.Request.Context(), file, header, collection)
		if upErr != nil {
			HandleError(c, upErr)
			return
		}
		input.ImageURL = url
	}

	items, err := h.contentService.Insert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, items)
}

// Update handles PATCH /api/v1/admin/content/:collection/:id
// @Summary Update fields of a row
// @Description Writes only the fields present in the body (per-field auto-save). Responds with the re-fetched, ordered collection.
// @Tags admin
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param id path string true "Row ID"
// @Param request body map[string]interface{} true "Fields to write"
// @Success 200 {object} APIResponse{data=[]domain.Item}
// @Failure 400 {object} APIResponse "No updatable fields"
// @Failure 404 {object} APIResponse "Unknown collection or row"
// @Security BearerAuth
// @Router /admin/content/{collection}/{id} [patch]
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "row id must be a UUID")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be a JSON object of fields")
		return
	}

	items, err := h.contentService.UpdateFields(c.Request.Context(), c.Param("collection"), id, fields)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// Delete handles DELETE /api/v1/admin/content/:collection/:id
// @Summary Delete a row
// @Description Deletes by identity; the caller drops the row from local state without a re-fetch
// @Tags admin
// @Param collection path string true "Collection name"
// @Param id path string true "Row ID"
// @Success 204 "Deleted"
// @Failure 404 {object} APIResponse "Unknown collection or row"
// @Security BearerAuth
// @Router /admin/content/{collection}/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "row id must be a UUID")
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), c.Param("collection"), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/v1/admin/export
// @Summary Export all collections
// @Description Streams an .xlsx workbook with one sheet per collection
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	data := make(map[string][]domain.Item, len(domain.Collections))
	for _, spec := range domain.Collections {
		items, err := h.contentService.AdminList(c.Request.Context(), spec.Name)
		if err != nil {
			HandleError(c, err)
			return
		}
		data[spec.Name] = items
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="content.xlsx"`)
	if err := export.WriteWorkbook(c.Writer, data); err != nil {
		HandleError(c, err)
	}
}

func splitHighlights(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

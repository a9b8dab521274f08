package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"hackfest/internal/domain"
	"hackfest/internal/export"
)

func TestWriteWorkbook_SheetPerCollection(t *testing.T) {
	buf := &bytes.Buffer{}
	err := export.WriteWorkbook(buf, map[string][]domain.Item{})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Len(t, sheets, len(domain.Collections))
	for i, spec := range domain.Collections {
		assert.Equal(t, spec.Name, sheets[i])
	}
}

func TestWriteWorkbook_RowValues(t *testing.T) {
	sortOrder := 1
	item := domain.Item{
		ID:         uuid.New(),
		Collection: domain.CollectionSponsors,
		Name:       "Acme",
		Highlights: domain.StringList{"gold", "returning"},
		ImageURL:   "https://cdn.example.com/acme.png",
		LinkURL:    "https://acme.example.com",
		SortOrder:  &sortOrder,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
	}

	buf := &bytes.Buffer{}
	err := export.WriteWorkbook(buf, map[string][]domain.Item{
		domain.CollectionSponsors: {item},
	})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue(domain.CollectionSponsors, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "ID", header)

	id, err := f.GetCellValue(domain.CollectionSponsors, "A2")
	assert.NoError(t, err)
	assert.Equal(t, item.ID.String(), id)

	name, err := f.GetCellValue(domain.CollectionSponsors, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Acme", name)

	highlights, err := f.GetCellValue(domain.CollectionSponsors, "F2")
	assert.NoError(t, err)
	assert.Equal(t, "gold, returning", highlights)

	created, err := f.GetCellValue(domain.CollectionSponsors, "J2")
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01 10:00:00", created)
}

func TestWriteWorkbook_EmptyCollectionsStillGetSheets(t *testing.T) {
	buf := &bytes.Buffer{}
	err := export.WriteWorkbook(buf, map[string][]domain.Item{
		domain.CollectionGuests: {{ID: uuid.New(), Name: "Ada"}},
	})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Collections absent from the data map still have a header row.
	header, err := f.GetCellValue(domain.CollectionVentures, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "ID", header)
}

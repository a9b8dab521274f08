package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hackfest/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestSortItems_AbsentOrderLast(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := domain.Item{ID: uuid.New(), SortOrder: intPtr(2), CreatedAt: base}
	b := domain.Item{ID: uuid.New(), SortOrder: nil, CreatedAt: base.Add(time.Minute)}
	c := domain.Item{ID: uuid.New(), SortOrder: intPtr(1), CreatedAt: base.Add(2 * time.Minute)}

	items := []domain.Item{a, b, c}
	domain.SortItems(items)

	assert.Equal(t, c.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
	assert.Equal(t, b.ID, items[2].ID)
}

func TestSortItems_TiesBreakOnCreatedAt(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := domain.Item{ID: uuid.New(), SortOrder: intPtr(1), CreatedAt: base.Add(time.Hour)}
	older := domain.Item{ID: uuid.New(), SortOrder: intPtr(1), CreatedAt: base}

	items := []domain.Item{newer, older}
	domain.SortItems(items)

	assert.Equal(t, older.ID, items[0].ID)
	assert.Equal(t, newer.ID, items[1].ID)
}

func TestSortItems_AllAbsentOrderedByCreatedAt(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := domain.Item{ID: uuid.New(), CreatedAt: base.Add(time.Minute)}
	first := domain.Item{ID: uuid.New(), CreatedAt: base}

	items := []domain.Item{second, first}
	domain.SortItems(items)

	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestPublicVisible(t *testing.T) {
	assert.True(t, (&domain.Item{ImageURL: "https://cdn.example.com/a.png"}).PublicVisible())
	assert.False(t, (&domain.Item{ImageURL: ""}).PublicVisible())
	assert.False(t, (&domain.Item{ImageURL: "   "}).PublicVisible())
}

func TestPublicView_FiltersAndCaps(t *testing.T) {
	items := make([]domain.Item, 0, 8)
	for i := 0; i < 8; i++ {
		item := domain.Item{ID: uuid.New(), ImageURL: "https://cdn.example.com/x.png"}
		if i == 3 {
			item.ImageURL = "" // hidden from visitors
		}
		items = append(items, item)
	}

	view := domain.PublicView(items, 6)

	assert.Len(t, view, 6)
	for _, item := range view {
		assert.NotEmpty(t, item.ImageURL)
	}
	// Order preserved: the first six visible items, skipping the hidden one.
	assert.Equal(t, items[0].ID, view[0].ID)
	assert.Equal(t, items[4].ID, view[3].ID)
}

func TestPublicView_ZeroCapMeansUncapped(t *testing.T) {
	items := make([]domain.Item, 20)
	for i := range items {
		items[i] = domain.Item{ID: uuid.New(), ImageURL: "https://cdn.example.com/x.png"}
	}

	view := domain.PublicView(items, 0)

	assert.Len(t, view, 20)
}

func TestStringList_ValueAndScan(t *testing.T) {
	list := domain.StringList{"hands-on", "bring a laptop"}

	val, err := list.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["hands-on","bring a laptop"]`, string(val.([]byte)))

	var scanned domain.StringList
	assert.NoError(t, scanned.Scan(val))
	assert.Equal(t, list, scanned)
}

func TestStringList_NilValue(t *testing.T) {
	var list domain.StringList

	val, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), val)
}

func TestStringList_ScanNil(t *testing.T) {
	scanned := domain.StringList{"stale"}
	assert.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestLookupCollection(t *testing.T) {
	spec, ok := domain.LookupCollection("guests")
	assert.True(t, ok)
	assert.Equal(t, 6, spec.PublicCap)

	spec, ok = domain.LookupCollection("workshops")
	assert.True(t, ok)
	assert.Equal(t, 3, spec.PublicCap)

	spec, ok = domain.LookupCollection("sponsors")
	assert.True(t, ok)
	assert.Equal(t, 0, spec.PublicCap)

	_, ok = domain.LookupCollection("speakers")
	assert.False(t, ok)
}

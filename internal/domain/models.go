package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is the shared row shape for every content collection. Individual
// collections use a subset of the display fields: people rows (guests,
// mentors, judges) carry name/title, workshops carry title/subtitle/
// description/highlights, sponsors and ventures carry name plus media/link.
type Item struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Collection  string     `db:"collection" json:"-"`
	Name        string     `db:"name" json:"name"`
	Title       string     `db:"title" json:"title"`
	Subtitle    string     `db:"subtitle" json:"subtitle"`
	Description string     `db:"description" json:"description"`
	Highlights  StringList `db:"highlights" json:"highlights"`
	ImageURL    string     `db:"image_url" json:"image_url"`
	LinkURL     string     `db:"link_url" json:"link_url"`
	SortOrder   *int       `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// PublicVisible reports whether the item is eligible for public display.
// A row without a populated media reference never reaches visitors.
func (i *Item) PublicVisible() bool {
	return strings.TrimSpace(i.ImageURL) != ""
}

// StringList stores an ordered list of short strings as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
}

// SortItems orders items by the single display-order contract shared by all
// consumers: ascending sort_order with absent values last, ties stable by
// insertion time.
func SortItems(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		sa, sb := items[a].SortOrder, items[b].SortOrder
		switch {
		case sa == nil && sb == nil:
			return items[a].CreatedAt.Before(items[b].CreatedAt)
		case sa == nil:
			return false
		case sb == nil:
			return true
		case *sa != *sb:
			return *sa < *sb
		default:
			return items[a].CreatedAt.Before(items[b].CreatedAt)
		}
	})
}

// PublicView filters items to publicly visible rows and applies the
// collection's display cap, preserving order. A cap of zero means uncapped.
func PublicView(items []Item, max int) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if item.PublicVisible() {
			visible = append(visible, item)
		}
	}
	if max > 0 && len(visible) > max {
		visible = visible[:max]
	}
	return visible
}

// Command seedcontent bulk-loads content collections from an Excel workbook.
// Each sheet is named after a collection (guests, mentors, judges, workshops,
// sponsors, ventures) and carries a header row followed by one row per item.
// Columns: Name, Title, Subtitle, Description, Highlights (comma separated),
// Image URL, Link URL, Sort Order.
// Usage: go run ./cmd/seedcontent roster.xlsx
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"hackfest/internal/config"
	"hackfest/internal/domain"
	"hackfest/internal/port"
	"hackfest/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedcontent <workbook.xlsx>")
		os.Exit(1)
	}
	xlsxPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.DB.Configured() {
		return fmt.Errorf("no database configured; set HACKFEST_DB_HOST and HACKFEST_DB_NAME")
	}

	acc := postgres.NewAccessor(&cfg.DB)
	defer acc.Close()
	repo := postgres.NewContentRepo(acc)

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx := context.Background()
	total := 0
	for _, sheet := range f.GetSheetList() {
		collection := strings.ToLower(strings.TrimSpace(sheet))
		if _, ok := domain.LookupCollection(collection); !ok {
			log.Printf("skipping sheet %q: not a known collection", sheet)
			continue
		}
		n, err := seedSheet(ctx, repo, f, sheet, collection)
		if err != nil {
			return fmt.Errorf("seed sheet %q: %w", sheet, err)
		}
		log.Printf("%s: %d items", collection, n)
		total += n
	}

	log.Printf("seeded %d items from %s", total, xlsxPath)
	return nil
}

// seedSheet inserts every data row of one sheet. Row 0 is the header.
// Columns: A=name, B=title, C=subtitle, D=description, E=highlights,
// F=image URL, G=link URL, H=sort order.
func seedSheet(ctx context.Context, repo port.ContentRepository, f *excelize.File, sheet, collection string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	count := 0
	for i, row := range rows {
		if i == 0 {
			continue
		}
		item, ok := parseRow(row, collection)
		if !ok {
			continue
		}
		if err := repo.Insert(ctx, item); err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		count++
	}
	return count, nil
}

func parseRow(row []string, collection string) (*domain.Item, bool) {
	item := &domain.Item{
		ID:          uuid.New(),
		Collection:  collection,
		Name:        cell(row, 0),
		Title:       cell(row, 1),
		Subtitle:    cell(row, 2),
		Description: cell(row, 3),
		ImageURL:    cell(row, 5),
		LinkURL:     cell(row, 6),
	}
	if item.Name == "" && item.Title == "" {
		return nil, false
	}

	if raw := cell(row, 4); raw != "" {
		for _, h := range strings.Split(raw, ",") {
			if h = strings.TrimSpace(h); h != "" {
				item.Highlights = append(item.Highlights, h)
			}
		}
	}
	if raw := cell(row, 7); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			item.SortOrder = &n
		}
	}
	return item, true
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

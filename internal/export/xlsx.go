package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"hackfest/internal/domain"
)

// columns defines the export header row, mirroring the updatable row fields.
var columns = []string{
	"ID",
	"Name",
	"Title",
	"Subtitle",
	"Description",
	"Highlights",
	"Image URL",
	"Link URL",
	"Sort Order",
	"Created At",
	"Updated At",
}

// WriteWorkbook writes one sheet per collection, rows in display order.
// Collections absent from data get an empty sheet so the workbook shape is
// stable for re-import.
func WriteWorkbook(w io.Writer, data map[string][]domain.Item) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, spec := range domain.Collections {
		if i == 0 {
			// Reuse the default sheet for the first collection.
			if err := f.SetSheetName("Sheet1", spec.Name); err != nil {
				return fmt.Errorf("export: renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(spec.Name); err != nil {
				return fmt.Errorf("export: creating sheet %s: %w", spec.Name, err)
			}
		}
		if err := writeSheet(f, spec.Name, data[spec.Name]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, items []domain.Item) error {
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	for row, item := range items {
		values := []interface{}{
			item.ID.String(),
			item.Name,
			item.Title,
			item.Subtitle,
			item.Description,
			strings.Join(item.Highlights, ", "),
			item.ImageURL,
			item.LinkURL,
			sortOrderCell(item.SortOrder),
			item.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			item.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		}
	}
	return nil
}

func sortOrderCell(sortOrder *int) interface{} {
	if sortOrder == nil {
		return ""
	}
	return *sortOrder
}

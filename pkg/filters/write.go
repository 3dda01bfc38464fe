// CLAUDE:SUMMARY Writers for filter tables: one JSON array per category, or a single XLSX workbook.
package filters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/hazyhaar/stanfood-menus/pkg/ingest"
)

// FileName returns the JSON file name of category c.
func FileName(c Category) string {
	return string(c) + "_filter.json"
}

// WriteJSON writes each category of t to dir/<category>_filter.json.
func WriteJSON(dir string, t Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create filter dir: %w", err)
	}
	for _, c := range Categories {
		entries := t[c]
		if entries == nil {
			entries = []Entry{}
		}
		if err := ingest.WriteJSON(filepath.Join(dir, FileName(c)), entries); err != nil {
			return fmt.Errorf("write %s: %w", c, err)
		}
	}
	return nil
}

// WriteXLSX writes t as a workbook with one sheet per category.
func WriteXLSX(path string, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, c := range Categories {
		sheet := string(c)
		if i == 0 {
			if err := f.SetSheetName(first, sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("new sheet %s: %w", sheet, err)
		}

		_ = f.SetCellValue(sheet, "A1", "name")
		_ = f.SetCellValue(sheet, "B1", "count")
		for j, e := range t[c] {
			row := j + 2
			nameCell, _ := excelize.CoordinatesToCellName(1, row)
			countCell, _ := excelize.CoordinatesToCellName(2, row)
			_ = f.SetCellValue(sheet, nameCell, e.Name)
			_ = f.SetCellValue(sheet, countCell, e.Count)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

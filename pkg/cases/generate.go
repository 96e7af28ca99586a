package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbook styling, matching the report look
const (
	headerFillColor = "4F81BD"
	failFillColor   = "FFC7CE"
	failFontColor   = "9C0006"
	maxColWidth     = 50
)

// Generate writes a suite's built-in case definitions to an xlsx workbook at
// path, replacing any existing file. Designed-to-fail rows (scenario prefixed
// with "[FAIL]") get a red tint so reviewers can spot them in the sheet.
func Generate(path string, s Suite) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cases dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, s.Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sheet = s.Sheet

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	failStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: failFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{failFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("fail style: %w", err)
	}

	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.CoordinatesToCellName(len(s.Headers), 1)
	if err != nil {
		return fmt.Errorf("header coords: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	widths := make([]int, len(s.Headers))
	for i, h := range s.Headers {
		widths[i] = len(h)
	}

	for n, row := range s.Rows {
		cells := make([]any, len(s.Headers))
		designedToFail := false
		for i, h := range s.Headers {
			v := row[h]
			cells[i] = v
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
			if h == ColScenario && strings.HasPrefix(v, "[FAIL]") {
				designedToFail = true
			}
		}
		start, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return fmt.Errorf("row coords: %w", err)
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", n+2, err)
		}
		if designedToFail {
			end, err := excelize.CoordinatesToCellName(len(s.Headers), n+2)
			if err != nil {
				return fmt.Errorf("row coords: %w", err)
			}
			if err := f.SetCellStyle(sheet, start, end, failStyle); err != nil {
				return fmt.Errorf("style row %d: %w", n+2, err)
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if w+2 > maxColWidth {
			w = maxColWidth - 2
		}
		if err := f.SetColWidth(sheet, col, col, float64(w+2)); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Package report persists case outcomes to styled xlsx workbooks, one row per
// executed case. Each append opens, modifies, saves and closes the file so a
// crashed run keeps everything recorded up to the failing case.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/PBL6-cnpm/cinecheck/pkg/cases"
	"github.com/PBL6-cnpm/cinecheck/pkg/checks"
)

// ErrReportLocked signals that the report file exists but cannot be replaced,
// usually because it is open in a spreadsheet application.
var ErrReportLocked = errors.New("report file locked")

var headers = []string{"TimestampUTC", "CaseID", "Feature", "Scenario", "Status", "Notes"}

const (
	sheetName   = "Results"
	maxColWidth = 50

	failFillColor = "FFC7CE"
	failFontColor = "9C0006"
)

// Writer appends result rows to one workbook.
type Writer struct {
	path string
}

// NewWriter returns a writer for the workbook at path. The file is created on
// first append.
func NewWriter(path string) *Writer { return &Writer{path: path} }

// Path returns the workbook location.
func (w *Writer) Path() string { return w.path }

// Reset deletes the previous run's workbook so results never mix across runs.
func (w *Writer) Reset() error {
	err := os.Remove(w.path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("remove %s (close it if open in a spreadsheet): %w", w.path, ErrReportLocked)
}

// Append records one verdict. The header row and its styling are written when
// the workbook does not exist yet.
func (w *Writer) Append(c cases.Case, v checks.Verdict) error {
	f, created, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if created {
		if err := w.writeHeader(f); err != nil {
			return err
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read report sheet: %w", err)
	}
	rowNum := len(rows) + 1

	ts := time.Now().UTC().Format("2006-01-02T15:04:05Z07:00")
	row := []any{ts, c.ID, c.FeatureName(), c.Scenario, string(v.Status), v.Notes}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row coords: %w", err)
	}
	if err := f.SetSheetRow(sheetName, start, &row); err != nil {
		return fmt.Errorf("write result row: %w", err)
	}

	if v.Failed() {
		if err := w.tintRow(f, rowNum, len(row)); err != nil {
			return err
		}
	}
	if err := w.fitColumns(f, c, v); err != nil {
		return err
	}

	if created {
		if err := f.SaveAs(w.path); err != nil {
			return fmt.Errorf("save report %s: %w", w.path, err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save report %s: %w", w.path, err)
	}
	return nil
}

func (w *Writer) open() (f *excelize.File, created bool, err error) {
	if _, statErr := os.Stat(w.path); statErr == nil {
		f, err = excelize.OpenFile(w.path)
		if err != nil {
			return nil, false, fmt.Errorf("open report %s: %w", w.path, err)
		}
		return f, false, nil
	}

	if err = os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return nil, false, fmt.Errorf("create report dir: %w", err)
	}
	f = excelize.NewFile()
	if err = f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		_ = f.Close()
		return nil, false, fmt.Errorf("rename report sheet: %w", err)
	}
	return f, true, nil
}

func (w *Writer) writeHeader(f *excelize.File) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("header coords: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", end, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func (w *Writer) tintRow(f *excelize.File, rowNum, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: failFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{failFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("fail style: %w", err)
	}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row coords: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(cols, rowNum)
	if err != nil {
		return fmt.Errorf("row coords: %w", err)
	}
	if err := f.SetCellStyle(sheetName, start, end, style); err != nil {
		return fmt.Errorf("style result row: %w", err)
	}
	return nil
}

// fitColumns widens columns to the longest value seen so far, capped so a
// verbose note does not blow the layout.
func (w *Writer) fitColumns(f *excelize.File, c cases.Case, v checks.Verdict) error {
	values := []string{"2006-01-02T15:04:05Z", c.ID, c.FeatureName(), c.Scenario, string(v.Status), v.Notes}
	for i, val := range values {
		width := len(headers[i])
		if len(val) > width {
			width = len(val)
		}
		if width+2 > maxColWidth {
			width = maxColWidth - 2
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		cur, err := f.GetColWidth(sheetName, col)
		if err == nil && cur >= float64(width+2) {
			continue
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width+2)); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}
	return nil
}

package cases

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrNoCases signals that a case workbook is absent or holds zero data rows.
// Callers treat it as "nothing to test against" and skip the session instead
// of failing it.
var ErrNoCases = errors.New("no cases to execute")

// Load reads the active sheet of an xlsx workbook into an ordered case list.
// The first row defines column names; rows with every cell empty are dropped
// silently. Row order is preserved and is the default execution order.
func Load(path string) ([]Case, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("case workbook %s: %w", path, ErrNoCases)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open case workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s has no data rows: %w", path, ErrNoCases)
	}

	headers := rows[0]
	result := make([]Case, 0, len(rows)-1)
	for _, row := range rows[1:] {
		c := New(headers, row)
		if c.Empty() {
			continue
		}
		result = append(result, c)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("workbook %s has no non-empty rows: %w", path, ErrNoCases)
	}
	return result, nil
}

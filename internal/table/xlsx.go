// Copyright Carter Zenke, 2026. All rights reserved.

package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// xlsxReader reads the first worksheet of an Office Open XML spreadsheet.
// Gradescope offers the same submission export as .xlsx; the cells come
// back as strings, matching the CSV path.
type xlsxReader struct{}

func (xlsxReader) read(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("reading %s: no worksheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet %q: %w", path, sheet, err)
	}
	return rows, nil
}

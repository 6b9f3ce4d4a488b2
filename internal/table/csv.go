// Copyright Carter Zenke, 2026. All rights reserved.

package table

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvReader reads UTF-8 comma-separated files.
type csvReader struct{}

func (csvReader) read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Exports sometimes drop trailing empty fields; Load re-aligns rows
	// against the header, so accept ragged records here.
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// Copyright Carter Zenke, 2026. All rights reserved.

// Package table loads submission exports into an in-memory Table and
// filters them down to submitted rows and question-response columns.
// CSV and XLSX inputs are supported behind a common reader interface.
package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/CarterZenke/gradesculptor/pkg/types"
)

// ErrUnsupportedInput indicates the input path does not carry a supported
// tabular extension. Callers can branch on it with errors.Is to treat an
// unusable filename differently from a failed read.
var ErrUnsupportedInput = errors.New("unsupported input format")

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file path to its input format by extension.
// Unknown extensions return ErrUnsupportedInput. The check is purely
// lexical; the file is not opened.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedInput, path)
	}
}

// reader parses one file format into raw rows, header first.
type reader interface {
	read(path string) ([][]string, error)
}

// Load reads the file at path into a Table. The first row is the header;
// data rows shorter than the header are padded with empty cells and
// longer rows are truncated, so every row aligns with Columns.
func Load(path string) (*types.Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var r reader
	switch format {
	case FormatCSV:
		r = csvReader{}
	case FormatXLSX:
		r = xlsxReader{}
	}

	rows, err := r.read(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", path)
	}

	header := rows[0]
	t := &types.Table{Columns: header, Rows: make([][]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		t.Rows = append(t.Rows, align(row, len(header)))
	}
	return t, nil
}

// align pads or truncates row to exactly width cells.
func align(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// Copyright Carter Zenke, 2026. All rights reserved.

package table

import (
	"fmt"
	"regexp"

	"github.com/CarterZenke/gradesculptor/pkg/types"
)

// questionColumn matches written-answer columns as Gradescope names them:
// "Question 3 Response", "Question 12.1 Response". Case-sensitive, one or
// two digits, optional one-or-two-digit sub-question suffix.
var questionColumn = regexp.MustCompile(`^Question \d{1,2}(?:\.\d{1,2})? Response$`)

// FilterSubmitted returns a new Table containing only rows whose idColumn
// cell is non-empty. Rows with an empty id are unsubmitted placeholders
// in the export and carry no answers worth writing.
func FilterSubmitted(t *types.Table, idColumn string) (*types.Table, error) {
	idx := t.ColumnIndex(idColumn)
	if idx < 0 {
		return nil, fmt.Errorf("id column %q not found in input", idColumn)
	}

	out := &types.Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if row[idx] == "" {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// FilterColumns returns a new Table keeping only question-response
// columns and the idColumn itself, preserving source column order.
func FilterColumns(t *types.Table, idColumn string) *types.Table {
	keep := make([]int, 0, len(t.Columns))
	for i, name := range t.Columns {
		if name == idColumn || questionColumn.MatchString(name) {
			keep = append(keep, i)
		}
	}

	out := &types.Table{Columns: make([]string, len(keep))}
	for j, i := range keep {
		out.Columns[j] = t.Columns[i]
	}
	for _, row := range t.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

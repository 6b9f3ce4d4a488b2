// Copyright Carter Zenke, 2026. All rights reserved.

package types

// Table is an in-memory tabular dataset loaded from a submission export.
// Column order follows the source header and drives output order; each
// row holds one cell per column, positionally aligned with Columns.
type Table struct {
	// Columns are the header names in source order.
	Columns []string

	// Rows are the data rows. Every row has exactly len(Columns) cells;
	// missing cells are the empty string.
	Rows [][]string
}

// ColumnIndex returns the position of name in Columns, or -1 if absent.
// Matching is case-sensitive.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

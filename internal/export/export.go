// Copyright Carter Zenke, 2026. All rights reserved.

// Package export writes each submission's answers to its own text file
// under the output directory, one directory per submission ID.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CarterZenke/gradesculptor/internal/format"
	"github.com/CarterZenke/gradesculptor/pkg/types"
)

// AnswersFile is the name of the per-submission answer file.
const AnswersFile = "written_answers.txt"

// Result holds the outcome of a write run.
type Result struct {
	// Entries records each written submission in table order.
	Entries []types.ManifestEntry
}

// Written returns the number of answer files produced.
func (r Result) Written() int {
	return len(r.Entries)
}

// Write produces outputDir/<id>/written_answers.txt for every row in t,
// one formatted block per column in column order. Directories are created
// as needed and existing files are overwritten, so re-running with the
// same input replaces rather than accumulates. The first failure aborts
// the remaining rows.
func Write(t *types.Table, idColumn, outputDir string) (Result, error) {
	idx := t.ColumnIndex(idColumn)
	if idx < 0 {
		return Result{}, fmt.Errorf("id column %q not found in table", idColumn)
	}

	width := format.Width(t.Columns)
	answers := len(t.Columns) - 1 // every column but the id holds an answer

	var res Result
	for _, row := range t.Rows {
		id := row[idx]
		dir := filepath.Join(outputDir, id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("creating %s: %w", dir, err)
		}
		path := filepath.Join(dir, AnswersFile)
		if err := writeAnswers(path, t.Columns, row, width); err != nil {
			return res, err
		}
		res.Entries = append(res.Entries, types.ManifestEntry{
			ID:      id,
			Path:    filepath.Join(id, AnswersFile),
			Answers: answers,
		})
	}
	return res, nil
}

// writeAnswers writes one submission's blocks to path. The file handle is
// scoped here: closed before the caller moves to the next row, error or not.
func writeAnswers(path string, columns, row []string, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	for i, name := range columns {
		if _, err := io.WriteString(f, format.Block(name, row[i], width)); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

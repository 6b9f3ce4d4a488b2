// Copyright Carter Zenke, 2026. All rights reserved.

package table

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeCSV drops a CSV file into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "submission_metadata.csv", want: FormatCSV},
		{path: "export.CSV", want: FormatCSV},
		{path: "export.xlsx", want: FormatXLSX},
		{path: "report.txt", wantErr: true},
		{path: "report", wantErr: true},
		{path: "report.csv.bak", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedInput) {
					t.Fatalf("DetectFormat(%q) err = %v, want ErrUnsupportedInput", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q): %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad_CSV(t *testing.T) {
	path := writeCSV(t, "submissions.csv",
		"Submission ID,Question 1 Response,Notes\n"+
			"42,cat,good\n"+
			",dog,\n")

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	wantColumns := []string{"Submission ID", "Question 1 Response", "Notes"}
	if !reflect.DeepEqual(got.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", got.Columns, wantColumns)
	}
	wantRows := [][]string{
		{"42", "cat", "good"},
		{"", "dog", ""},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Rows, wantRows)
	}
}

func TestLoad_RaggedRowsAlignToHeader(t *testing.T) {
	path := writeCSV(t, "ragged.csv",
		"Submission ID,Question 1 Response,Question 2 Response\n"+
			"42,cat\n"+
			"43,dog,bird,extra\n")

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	wantRows := [][]string{
		{"42", "cat", ""},
		{"43", "dog", "bird"},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Rows, wantRows)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("report.txt")
		if !errors.Is(err, ErrUnsupportedInput) {
			t.Fatalf("err = %v, want ErrUnsupportedInput", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if errors.Is(err, ErrUnsupportedInput) {
			t.Fatal("missing file must not report ErrUnsupportedInput")
		}
	})

	t.Run("empty file has no header", func(t *testing.T) {
		path := writeCSV(t, "empty.csv", "")
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for empty file")
		}
	})

	t.Run("malformed quoting", func(t *testing.T) {
		path := writeCSV(t, "bad.csv", "Submission ID\n\"unterminated\n")
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "headeronly.csv", "Submission ID,Question 1 Response\n")
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Rows) != 0 {
		t.Errorf("Rows = %v, want none", got.Rows)
	}
}

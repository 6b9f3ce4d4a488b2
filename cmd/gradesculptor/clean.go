package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CarterZenke/gradesculptor/internal/export"
	"github.com/CarterZenke/gradesculptor/internal/table"
	"github.com/CarterZenke/gradesculptor/pkg/types"
)

// runClean drives the whole pipeline: load, filter, write.
func runClean(cmd *cobra.Command, args []string) error {
	return clean(cleanOptions{
		Filename:  viper.GetString("filename"),
		IDColumn:  viper.GetString("id-column"),
		OutputDir: viper.GetString("output"),
		Manifest:  viper.GetBool("manifest"),
	}, cmd.OutOrStdout())
}

// cleanOptions collects the resolved flag and config values for one run.
type cleanOptions struct {
	Filename  string
	IDColumn  string
	OutputDir string
	Manifest  bool
}

// clean converts one submission export into per-submission answer files,
// printing status lines to w. An unsupported input extension is reported
// on w and treated as success, preserving the tool's historical contract.
func clean(opts cleanOptions, w io.Writer) error {
	if _, err := table.DetectFormat(opts.Filename); err != nil {
		fmt.Fprintln(w, "Must read from a CSV file.")
		return nil
	}

	fmt.Fprintln(w, "Cleaning answers.")

	t, err := table.Load(opts.Filename)
	if err != nil {
		return err
	}

	t, err = table.FilterSubmitted(t, opts.IDColumn)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Number of submissions to parse: %d\n", len(t.Rows))

	t = table.FilterColumns(t, opts.IDColumn)

	res, err := export.Write(t, opts.IDColumn, opts.OutputDir)
	if err != nil {
		return err
	}

	if opts.Manifest {
		m := types.Manifest{
			Source:      opts.Filename,
			IDColumn:    opts.IDColumn,
			WrittenAt:   time.Now().UTC(),
			Submissions: res.Entries,
		}
		if err := export.WriteManifest(opts.OutputDir, m); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Done.")
	return nil
}

// Copyright Carter Zenke, 2026. All rights reserved.

package types

import "time"

// Manifest summarizes one conversion run. It is written as manifest.yaml
// into the output directory so graders can see what a run produced
// without listing the tree.
type Manifest struct {
	// Source is the input file the submissions were read from.
	Source string `yaml:"source"`

	// IDColumn is the column used to key submissions.
	IDColumn string `yaml:"id_column"`

	// WrittenAt is the UTC timestamp of the run.
	WrittenAt time.Time `yaml:"written_at"`

	// Submissions lists every answer file written, in table order.
	Submissions []ManifestEntry `yaml:"submissions"`
}

// ManifestEntry records one written submission.
type ManifestEntry struct {
	// ID is the submission identifier, also the output subdirectory name.
	ID string `yaml:"id"`

	// Path is the answer file location relative to the output directory.
	Path string `yaml:"path"`

	// Answers is the number of question-response columns written.
	Answers int `yaml:"answers"`
}

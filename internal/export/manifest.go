// Copyright Carter Zenke, 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/CarterZenke/gradesculptor/pkg/types"
)

// ManifestFile is the name of the run summary written into the output
// directory.
const ManifestFile = "manifest.yaml"

// WriteManifest saves the run summary as YAML in outputDir. Re-running
// overwrites the previous manifest.
func WriteManifest(outputDir string, m types.Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outputDir, err)
	}
	path := filepath.Join(outputDir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest from outputDir.
func ReadManifest(outputDir string) (*types.Manifest, error) {
	path := filepath.Join(outputDir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Export is the on-disk layout of a history export.
type Export struct {
	Runs []Run `yaml:"runs"`
}

// ExportYAML writes up to limit recent runs to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string, limit int) error {
	runs, err := s.Runs(ctx, limit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(&Export{Runs: runs})
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadExport loads a file written by ExportYAML.
func ReadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	var e Export
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	return &e, nil
}

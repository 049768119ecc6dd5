// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes all runs to logDir/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	runs, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.logDir, "export.yaml")
	data, err := yaml.Marshal(runs)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportJSON writes all runs to logDir/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	runs, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.logDir, "export.json")
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

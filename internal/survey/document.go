// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nlp4re/orkgforms/pkg/types"
)

// LoadDocument reads and validates a survey JSON document.
func LoadDocument(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading survey document: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return types.Document{}, fmt.Errorf("invalid survey document %s: %w", path, err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("parsing survey document %s: %w", path, err)
	}
	return doc, nil
}

// SaveDocument writes the document as indented JSON, keeping non-ASCII
// question text readable in the output file.
func SaveDocument(path string, doc types.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding survey document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing survey document: %w", err)
	}
	return nil
}

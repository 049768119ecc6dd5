// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus indicates the outcome of one pipeline run for a single PDF.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunExtracted RunStatus = "extracted"
	RunCreated   RunStatus = "created"
	RunFailed    RunStatus = "failed"
)

// Run records one PDF's trip through the pipeline: extraction to JSON and
// instance creation in ORKG.
type Run struct {
	// ID is a unique identifier for the run.
	ID string `json:"id" yaml:"id"`

	// PDFPath is the source PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// JSONPath is the extracted survey document, once extraction succeeds.
	JSONPath string `json:"json_path,omitempty" yaml:"json_path,omitempty"`

	// InstanceID is the created ORKG instance resource, once creation succeeds.
	InstanceID string `json:"instance_id,omitempty" yaml:"instance_id,omitempty"`

	// Status tracks pipeline progress for this PDF.
	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

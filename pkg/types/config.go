// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "orkgforms/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExtractionConfig holds settings for the PDF form extraction stage.
type ExtractionConfig struct {
	// OutDir is the directory where extracted survey JSON documents are
	// written (default "pdf2JSON_Results").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// LabelProximity is the maximum horizontal distance in points between
	// a widget and the first word of its right-hand label (default 80).
	LabelProximity float64 `json:"label_proximity" yaml:"label_proximity"`
}

// ORKGConfig holds connection settings for the ORKG API.
type ORKGConfig struct {
	HTTPConfig `yaml:",inline"`

	// Host is the ORKG instance base URL (default "https://incubating.orkg.org").
	Host string `json:"host" yaml:"host"`

	// Email and Password authenticate API writes. Usually loaded from
	// .secrets/orkg-email and .secrets/orkg-password.
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// InstanceConfig holds settings for template instance creation.
type InstanceConfig struct {
	// TemplateID is the published NLP4RE ID card template resource.
	TemplateID string `json:"template_id" yaml:"template_id"`

	// TargetClassID is the class that instances are created in. Instances
	// are linked to the template through this class.
	TargetClassID string `json:"target_class_id" yaml:"target_class_id"`
}

// RunLogConfig holds settings for the pipeline run log.
type RunLogConfig struct {
	// LogDir is the directory holding the run database (default "run_logs").
	LogDir string `json:"log_dir" yaml:"log_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	ORKG       ORKGConfig       `json:"orkg" yaml:"orkg"`
	Instance   InstanceConfig   `json:"instance" yaml:"instance"`
	RunLog     RunLogConfig     `json:"run_log" yaml:"run_log"`
}

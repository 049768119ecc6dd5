// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func loadSchema() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("survey.schema.json", strings.NewReader(schemaJSON)); err != nil {
		schemaErr = err
		return
	}
	schema, schemaErr = c.Compile("survey.schema.json")
}

// ValidateDocument checks raw JSON against the survey document schema
// before it is trusted for template or instance creation.
func ValidateDocument(data []byte) error {
	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return schemaErr
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}

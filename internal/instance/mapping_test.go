// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		key    string
		want   string
	}{
		{"exact match", "Requirements tracing", "RE task", "R1544133"},
		{"case-insensitive match", "requirements tracing", "RE task", "R1544133"},
		{"partial match answer in label", "tracing", "RE task", "R1544133"},
		{"partial match label in answer", "Classification (automated)", "NLP task type", "R1544148"},
		{"short answers never match partially", "tra", "RE task", ""},
		{"ambiguous partial picks first label in sorted order", "Requirements", "RE task", "R1544127"},
		{"ambiguous partial on extraction tasks", "Information extraction", "RE task", "R1544136"},
		{"unknown answer", "Quantum parsing", "NLP task type", ""},
		{"unknown key", "Requirements tracing", "No such key", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAnswer(tt.answer, tt.key))
		})
	}
}

func TestOtherLabel(t *testing.T) {
	tests := []struct {
		answer    string
		wantLabel string
		wantOK    bool
	}{
		{"Other/Comments", "Unknown", true},
		{"other", "Unknown", true},
		{"Other (e.g., models, trace links, diagrams, code comments)/Comments", "Unknown", true},
		{"Other: legal corpus from EU regulations", "Other: legal corpus from EU regulations", true},
		{"Requirements tracing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			label, ok := OtherLabel(tt.answer)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestCatalogStructure(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, 6)

	codes := make(map[string]string)
	var walk func(props []Property)
	walk = func(props []Property) {
		for _, p := range props {
			if len(p.Children) > 0 {
				// Components carry a class and no question codes.
				assert.NotEmpty(t, p.ClassID, "%s has children but no class", p.Label)
				assert.NotEmpty(t, p.SubtemplateID, "%s has children but no subtemplate", p.Label)
				assert.Empty(t, p.QuestionCodes, "%s has children and question codes", p.Label)
				walk(p.Children)
				continue
			}
			// Leaves map questions to values.
			assert.NotEmpty(t, p.QuestionCodes, "%s has no question codes", p.Label)
			assert.NotEmpty(t, p.MappingKey, "%s has no mapping key", p.Label)
			for _, code := range p.QuestionCodes {
				if prev, dup := codes[code]; dup {
					t.Errorf("question %s mapped to both %s and %s", code, prev, p.ID)
				}
				codes[code] = p.ID
			}
			// A leaf resolves through curated resources or literals.
			if !literalKeys[p.MappingKey] {
				assert.True(t, HasMappings(p.MappingKey), "%s key %q has no resource table", p.Label, p.MappingKey)
			}
		}
	}
	walk(catalog)

	// Spot-check the section-to-question wiring.
	assert.Equal(t, "P181002", codes["I.1"])
	assert.Equal(t, "P181006", codes["III.9"])
	assert.Equal(t, "P59120", codes["V.1"])
	assert.Equal(t, "P181057", codes["VII.4"])
}

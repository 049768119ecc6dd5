// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlp4re/orkgforms/pkg/types"
)

const validDocJSON = `{
  "pdf_name": "Example1-Yang-etal-2011.pdf",
  "total_questions": 1,
  "extraction_summary": {"total_fields_found": 3, "questions_with_selections": 1},
  "questions": [
    {
      "question_text": "I.1. What RE task is your study addressing?",
      "type": "CheckBox",
      "selected_answers": ["Requirements tracing"],
      "all_options": ["Requirements tracing", "Requirements classification"],
      "options_details": [
        {"label": "Requirements tracing", "field_name": "q_0_a", "field_value": "Yes", "is_selected": true},
        {"label": "Requirements classification", "field_name": "q_1_b", "field_value": "Off", "is_selected": false}
      ],
      "total_options": 2
    }
  ]
}`

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"valid document", validDocJSON, false},
		{"missing pdf_name", `{"total_questions": 0, "extraction_summary": {"total_fields_found": 0, "questions_with_selections": 0}, "questions": []}`, true},
		{"question without type", `{"pdf_name": "x.pdf", "total_questions": 1, "extraction_summary": {"total_fields_found": 0, "questions_with_selections": 0}, "questions": [{"question_text": "Q"}]}`, true},
		{"not json", `{{`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument([]byte(tt.json))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadDocument(t *testing.T) {
	doc := types.Document{
		PDFName:        "paper.pdf",
		TotalQuestions: 1,
		Summary:        types.ExtractionSummary{TotalFields: 2, QuestionsWithSelections: 1},
		Questions: []types.Question{
			{Text: "I.1. RE task?", Type: types.QuestionText, Answer: "Tracing", FieldName: "f1"},
		},
	}

	path := filepath.Join(t.TempDir(), "paper.json")
	require.NoError(t, SaveDocument(path, doc))

	got, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLoadDocumentRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"questions": []}`), 0o644))

	_, err := LoadDocument(path)
	assert.Error(t, err)
}

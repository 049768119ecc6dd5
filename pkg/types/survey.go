// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// QuestionType categorizes a structured survey question by the kind of form
// field group it was built from.
type QuestionType string

const (
	QuestionText     QuestionType = "Text"
	QuestionRadio    QuestionType = "RadioButton"
	QuestionCheckbox QuestionType = "CheckBox"
)

// Option describes one selectable option of a choice question.
type Option struct {
	// Label is the human-readable option text found next to the widget.
	Label string `json:"label" yaml:"label"`

	// FieldName is the raw AcroForm field name the option came from.
	FieldName string `json:"field_name" yaml:"field_name"`

	// FieldValue is the raw field value ("Off", "Yes", an export value,
	// or free text for companion text inputs).
	FieldValue string `json:"field_value" yaml:"field_value"`

	// Selected reports whether the option was ticked in the form.
	Selected bool `json:"is_selected" yaml:"is_selected"`
}

// Question is one structured survey question assembled from a group of
// AcroForm fields that share a base name.
type Question struct {
	// Text is the cleaned question text.
	Text string `json:"question_text" yaml:"question_text"`

	// Type is Text for free-text questions, RadioButton or CheckBox for
	// choice groups.
	Type QuestionType `json:"type" yaml:"type"`

	// Answer holds the free-text answer for Text questions.
	Answer string `json:"answer,omitempty" yaml:"answer,omitempty"`

	// FieldName is the raw field name for Text questions.
	FieldName string `json:"field_name,omitempty" yaml:"field_name,omitempty"`

	// SelectedAnswers lists the selected option labels for choice
	// questions. Contains the single entry "None" when nothing is selected.
	SelectedAnswers []string `json:"selected_answers,omitempty" yaml:"selected_answers,omitempty"`

	// AllOptions lists every option label of a choice question.
	AllOptions []string `json:"all_options,omitempty" yaml:"all_options,omitempty"`

	// Options holds the per-option details of a choice question.
	Options []Option `json:"options_details,omitempty" yaml:"options_details,omitempty"`

	// TotalOptions is len(AllOptions), kept explicit in the JSON document.
	TotalOptions int `json:"total_options,omitempty" yaml:"total_options,omitempty"`
}

// ExtractionSummary holds document-level counts for an extracted form.
type ExtractionSummary struct {
	// TotalFields is the number of raw AcroForm fields processed.
	TotalFields int `json:"total_fields_found" yaml:"total_fields_found"`

	// QuestionsWithSelections counts questions that carry at least one
	// answer or selection.
	QuestionsWithSelections int `json:"questions_with_selections" yaml:"questions_with_selections"`
}

// Document is the structured survey extracted from one PDF form. This is
// the JSON format written to pdf2JSON_Results and consumed by template and
// instance creation.
type Document struct {
	// PDFName is the base name of the source PDF.
	PDFName string `json:"pdf_name" yaml:"pdf_name"`

	// TotalQuestions is len(Questions).
	TotalQuestions int `json:"total_questions" yaml:"total_questions"`

	// Summary holds extraction counts.
	Summary ExtractionSummary `json:"extraction_summary" yaml:"extraction_summary"`

	// Questions lists the structured questions in form order.
	Questions []Question `json:"questions" yaml:"questions"`
}

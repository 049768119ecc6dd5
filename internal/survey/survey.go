// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package survey turns raw AcroForm fields into structured question
// documents: fields sharing a base name become one question, button groups
// become choice questions with options and selections, lone text fields
// become free-text questions.
package survey

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nlp4re/orkgforms/internal/pdfform"
	"github.com/nlp4re/orkgforms/pkg/types"
)

// GenerateAppearancesField is an Adobe-internal form field that carries no
// survey content. Template and instance creation skip it.
const GenerateAppearancesField = "Fc-int01-generateAppearances"

// fieldSuffix strips the option counters the form author appended to field
// names, e.g. "Question_0_a" and "Question_1_b" both reduce to "Question".
var fieldSuffix = regexp.MustCompile(`_\d+_[^_]*$|_edit;_[^_]*$`)

// Build assembles the structured survey document for one extracted PDF.
func Build(pdfName string, fields []pdfform.Field) types.Document {
	groups, order := groupFields(fields)

	var questions []types.Question
	for _, base := range order {
		q, ok := buildQuestion(base, groups[base])
		if ok {
			questions = append(questions, q)
		}
	}

	withSelections := 0
	for _, q := range questions {
		if HasAnswer(q) {
			withSelections++
		}
	}

	return types.Document{
		PDFName:        pdfName,
		TotalQuestions: len(questions),
		Summary: types.ExtractionSummary{
			TotalFields:             len(fields),
			QuestionsWithSelections: withSelections,
		},
		Questions: questions,
	}
}

// groupFields buckets fields by base question name, preserving the order in
// which base names first appear in the form.
func groupFields(fields []pdfform.Field) (map[string][]pdfform.Field, []string) {
	groups := make(map[string][]pdfform.Field)
	var order []string
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		base := fieldSuffix.ReplaceAllString(f.Name, "")
		if _, seen := groups[base]; !seen {
			order = append(order, base)
		}
		groups[base] = append(groups[base], f)
	}
	return groups, order
}

func buildQuestion(base string, fields []pdfform.Field) (types.Question, bool) {
	if len(fields) == 0 {
		return types.Question{}, false
	}

	text := questionLabel(fields)
	if text == "" {
		text = CleanQuestionText(base)
	}

	// A lone text field is a free-text question.
	if len(fields) == 1 && fields[0].Type == pdfform.FieldText {
		return types.Question{
			Text:      text,
			Type:      types.QuestionText,
			Answer:    fields[0].Value,
			FieldName: fields[0].Name,
		}, true
	}

	return buildChoiceQuestion(text, fields), true
}

// questionLabel returns the first form-defined label (TU entry) in the group.
func questionLabel(fields []pdfform.Field) string {
	for _, f := range fields {
		if f.Label != "" {
			return f.Label
		}
	}
	return ""
}

// buildChoiceQuestion assembles a RadioButton/CheckBox question. A text
// field inside the group is the "Other/Comments" companion input; its
// content joins the selected answers so free-text input is never lost.
func buildChoiceQuestion(text string, fields []pdfform.Field) types.Question {
	var options []types.Option
	var selected []string
	var textInput string

	for _, f := range fields {
		if f.Type == pdfform.FieldText {
			if strings.TrimSpace(f.Value) != "" {
				textInput = strings.TrimSpace(f.Value)
			}
			if f.NearbyText == "" {
				continue
			}
		}

		opt := types.Option{
			Label:      NormalizeOptionLabel(f.NearbyText),
			FieldName:  f.Name,
			FieldValue: f.Value,
			Selected:   f.Selected(),
		}
		options = append(options, opt)

		if opt.Selected {
			selected = append(selected, opt.Label)
			if opt.Label == "Other/Comments" && textInput != "" {
				selected = append(selected, textInput)
			}
		}
	}

	// A filled companion input counts as an answer even when its
	// checkbox was left unticked.
	if textInput != "" && !contains(selected, textInput) {
		selected = append(selected, textInput)
	}

	if len(selected) == 0 {
		selected = []string{"None"}
	}

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	return types.Question{
		Text:            text,
		Type:            choiceType(fields),
		SelectedAnswers: selected,
		AllOptions:      labels,
		Options:         options,
		TotalOptions:    len(options),
	}
}

// choiceType labels the group RadioButton when any radio widget is present,
// CheckBox when any checkbox is, and the sorted joined type names otherwise.
func choiceType(fields []pdfform.Field) types.QuestionType {
	kinds := make(map[pdfform.FieldType]bool)
	for _, f := range fields {
		kinds[f.Type] = true
	}
	if kinds[pdfform.FieldRadio] {
		return types.QuestionRadio
	}
	if kinds[pdfform.FieldCheckbox] {
		return types.QuestionCheckbox
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return types.QuestionType(strings.Join(names, ","))
}

// HasAnswer reports whether a question carries any selection or answer.
func HasAnswer(q types.Question) bool {
	if q.Type == types.QuestionText {
		return strings.TrimSpace(q.Answer) != ""
	}
	for _, s := range q.SelectedAnswers {
		if s != "" && s != "None" {
			return true
		}
	}
	for _, opt := range q.Options {
		if opt.Selected {
			return true
		}
	}
	return false
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

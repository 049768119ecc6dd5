// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlp4re/orkgforms/internal/pdfform"
	"github.com/nlp4re/orkgforms/pkg/types"
)

func TestBuildTextQuestion(t *testing.T) {
	fields := []pdfform.Field{
		{
			Name:  "I_1_What_RE_task",
			Type:  pdfform.FieldText,
			Value: "Requirements classification",
			Label: "I.1. What RE task is your study addressing?",
		},
	}

	doc := Build("paper.pdf", fields)

	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, types.QuestionText, q.Type)
	assert.Equal(t, "I.1. What RE task is your study addressing?", q.Text)
	assert.Equal(t, "Requirements classification", q.Answer)
	assert.Equal(t, "I_1_What_RE_task", q.FieldName)
	assert.Equal(t, 1, doc.Summary.QuestionsWithSelections)
}

func TestBuildChoiceQuestion(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "NLP_task_type_0_a", Type: pdfform.FieldCheckbox, Value: "Yes", NearbyText: "Classification"},
		{Name: "NLP_task_type_1_b", Type: pdfform.FieldCheckbox, Value: "Off", NearbyText: "Information retrieval"},
		{Name: "NLP_task_type_2_c", Type: pdfform.FieldCheckbox, Value: "Off", NearbyText: "Translation"},
	}

	doc := Build("paper.pdf", fields)

	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, types.QuestionCheckbox, q.Type)
	assert.Equal(t, []string{"Classification"}, q.SelectedAnswers)
	assert.Equal(t, []string{"Classification", "Information retrieval", "Translation"}, q.AllOptions)
	assert.Equal(t, 3, q.TotalOptions)
	assert.Equal(t, 3, doc.Summary.TotalFields)
}

func TestBuildRadioGroupWinsOverCheckbox(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "Q_0_a", Type: pdfform.FieldRadio, Value: "Off"},
		{Name: "Q_1_b", Type: pdfform.FieldCheckbox, Value: "Off"},
	}
	doc := Build("p.pdf", fields)
	require.Len(t, doc.Questions, 1)
	assert.Equal(t, types.QuestionRadio, doc.Questions[0].Type)
}

func TestBuildNoSelectionYieldsNone(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "Q_0_a", Type: pdfform.FieldCheckbox, Value: "Off", NearbyText: "Opt A"},
		{Name: "Q_1_b", Type: pdfform.FieldCheckbox, Value: "Off", NearbyText: "Opt B"},
	}
	doc := Build("p.pdf", fields)
	require.Len(t, doc.Questions, 1)
	assert.Equal(t, []string{"None"}, doc.Questions[0].SelectedAnswers)
	assert.Equal(t, 0, doc.Summary.QuestionsWithSelections)
}

func TestBuildCompanionTextInput(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "Q_0_a", Type: pdfform.FieldCheckbox, Value: "Yes", NearbyText: "Other/Comments"},
		{Name: "Q_edit;_x", Type: pdfform.FieldText, Value: "custom dataset"},
	}
	doc := Build("p.pdf", fields)
	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Contains(t, q.SelectedAnswers, "Other/Comments")
	assert.Contains(t, q.SelectedAnswers, "custom dataset")
}

func TestBuildCompanionTextWithoutTickStillCounts(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "Q_0_a", Type: pdfform.FieldCheckbox, Value: "Off", NearbyText: "Other/Comments"},
		{Name: "Q_edit;_x", Type: pdfform.FieldText, Value: "typed but not ticked"},
	}
	doc := Build("p.pdf", fields)
	require.Len(t, doc.Questions, 1)
	assert.Contains(t, doc.Questions[0].SelectedAnswers, "typed but not ticked")
}

func TestBuildSkipsNamelessFields(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "", Type: pdfform.FieldCheckbox, Value: "Yes"},
	}
	doc := Build("p.pdf", fields)
	assert.Empty(t, doc.Questions)
	// Raw field still counts toward the processed total.
	assert.Equal(t, 1, doc.Summary.TotalFields)
}

func TestBuildPreservesFormOrder(t *testing.T) {
	fields := []pdfform.Field{
		{Name: "B_question_0_x", Type: pdfform.FieldCheckbox, NearbyText: "b"},
		{Name: "A_question", Type: pdfform.FieldText, Value: "first seen second"},
		{Name: "B_question_1_y", Type: pdfform.FieldCheckbox, NearbyText: "b2"},
	}
	doc := Build("p.pdf", fields)
	require.Len(t, doc.Questions, 2)
	assert.Equal(t, "B question", doc.Questions[0].Text)
	assert.Equal(t, "A question", doc.Questions[1].Text)
}

func TestHasAnswer(t *testing.T) {
	tests := []struct {
		name string
		q    types.Question
		want bool
	}{
		{"text with answer", types.Question{Type: types.QuestionText, Answer: "yes"}, true},
		{"text blank", types.Question{Type: types.QuestionText, Answer: "  "}, false},
		{"choice with selection", types.Question{Type: types.QuestionCheckbox, SelectedAnswers: []string{"A"}}, true},
		{"choice none sentinel", types.Question{Type: types.QuestionCheckbox, SelectedAnswers: []string{"None"}}, false},
		{"choice selected option only", types.Question{Type: types.QuestionRadio, Options: []types.Option{{Selected: true}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnswer(tt.q))
		})
	}
}

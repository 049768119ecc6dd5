// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkbox at x 50-62, vertically centered on y 700.
var testWidget = Field{
	Type: FieldCheckbox,
	Rect: Rect{LLx: 50, LLy: 694, URx: 62, URy: 706},
	Page: 1,
}

func TestFindLabel(t *testing.T) {
	tests := []struct {
		name  string
		words []word
		want  string
	}{
		{
			name: "words right of widget on same line",
			words: []word{
				{page: 1, x: 66, y: 699, text: "Requirements"},
				{page: 1, x: 130, y: 699, text: "classification"},
			},
			want: "Requirements classification",
		},
		{
			name: "ignores words on other pages",
			words: []word{
				{page: 2, x: 66, y: 699, text: "Wrong"},
			},
			want: "",
		},
		{
			name: "ignores words left of the widget",
			words: []word{
				{page: 1, x: 10, y: 699, text: "I.1"},
				{page: 1, x: 66, y: 699, text: "Tracing"},
			},
			want: "Tracing",
		},
		{
			name: "ignores words on distant lines",
			words: []word{
				{page: 1, x: 66, y: 650, text: "Other"},
				{page: 1, x: 66, y: 701, text: "Defect"},
				{page: 1, x: 100, y: 701, text: "detection"},
			},
			want: "Defect detection",
		},
		{
			name: "rejects first word beyond proximity window",
			words: []word{
				{page: 1, x: 400, y: 700, text: "FarColumn"},
			},
			want: "",
		},
		{
			name: "stops at a column jump",
			words: []word{
				{page: 1, x: 66, y: 700, text: "Model"},
				{page: 1, x: 100, y: 700, text: "generation"},
				{page: 1, x: 420, y: 700, text: "NextColumn"},
			},
			want: "Model generation",
		},
		{
			name:  "no words",
			words: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findLabel(testWidget, tt.words, DefaultLabelProximity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindLabelBandFallback(t *testing.T) {
	tests := []struct {
		name  string
		words []word
		want  string
	}{
		{
			name: "tall fonts widen the band",
			words: []word{
				{page: 1, x: 66, y: 690, h: 20, text: "Requirements"},
				{page: 1, x: 130, y: 690, h: 20, text: "classification"},
			},
			want: "Requirements classification",
		},
		{
			name: "small fonts keep the band tight",
			words: []word{
				{page: 1, x: 66, y: 690, h: 5, text: "NextQuestion"},
			},
			want: "",
		},
		{
			name: "same-line hit wins over the wide band",
			words: []word{
				{page: 1, x: 66, y: 701, h: 20, text: "Near"},
				{page: 1, x: 66, y: 690, h: 20, text: "Far"},
			},
			want: "Near",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findLabel(testWidget, tt.words, DefaultLabelProximity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldSelected(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{"checked checkbox", Field{Type: FieldCheckbox, Value: "Yes"}, true},
		{"unchecked checkbox", Field{Type: FieldCheckbox, Value: "Off"}, false},
		{"checkbox without value", Field{Type: FieldCheckbox}, false},
		{"radio with export value", Field{Type: FieldRadio, Value: "Choice2"}, true},
		{"text with content", Field{Type: FieldText, Value: "free answer"}, true},
		{"text with whitespace only", Field{Type: FieldText, Value: "   "}, false},
		{"button never selected", Field{Type: FieldButton, Value: "Yes"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Selected())
		})
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfform reads interactive AcroForm fields out of PDF survey forms.
// It returns raw field records (name, type, value, widget geometry, nearby
// label text); interpretation into survey questions happens in
// internal/survey.
package pdfform

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FieldType identifies the widget kind of an AcroForm field.
type FieldType string

const (
	FieldText      FieldType = "Text"
	FieldCheckbox  FieldType = "CheckBox"
	FieldRadio     FieldType = "RadioButton"
	FieldSelect    FieldType = "ComboBox"
	FieldButton    FieldType = "Button"
	FieldSignature FieldType = "Signature"
	FieldUnknown   FieldType = "Unknown"
)

// Rect is a widget rectangle in PDF user space (origin bottom-left).
type Rect struct {
	LLx, LLy float64
	URx, URy float64
}

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 { return (r.LLy + r.URy) / 2 }

// Field is one raw form widget as it appears in the PDF.
type Field struct {
	// Name is the AcroForm field name (T entry, inherited from parents).
	Name string

	// Type is the widget kind derived from FT and the field flags.
	Type FieldType

	// Value is the field value (V entry): free text for text fields,
	// "Off" or an export value for buttons.
	Value string

	// Label is the form-defined alternate text (TU entry), which in the
	// NLP4RE ID cards usually holds the question text.
	Label string

	// NearbyText is the page text found immediately to the right of the
	// widget, used as the option label for choice widgets.
	NearbyText string

	// Options lists the choices of a ComboBox field (Opt entry).
	Options []string

	// Rect is the widget rectangle; Page is the 1-based page number.
	Rect Rect
	Page int
}

// Selected reports whether the widget carries an answer: a non-"Off" value
// for buttons, non-blank text for text fields.
func (f Field) Selected() bool {
	switch f.Type {
	case FieldRadio, FieldCheckbox:
		return f.Value != "" && f.Value != "Off"
	case FieldText:
		return strings.TrimSpace(f.Value) != ""
	}
	return false
}

// ExtractFile reads all interactive form fields from the PDF at path and
// annotates each with the label text found next to its widget. An empty
// slice means the PDF has no interactive form ("flat" PDF).
func ExtractFile(path string, labelProximity float64) ([]Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("resolving page count: %w", err)
	}

	fields, err := collectFields(ctx)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	// Label lookup needs positioned page text, which pdfcpu does not
	// expose; a second pass with ledongthuc/pdf provides it.
	words, err := pageWords(path)
	if err != nil {
		// Labels are a best-effort enrichment; field data alone is
		// still usable.
		fmt.Fprintf(os.Stderr, "warning: page text unavailable for %s: %v\n", path, err)
		return fields, nil
	}

	for i := range fields {
		if fields[i].NearbyText == "" {
			fields[i].NearbyText = findLabel(fields[i], words, labelProximity)
		}
	}
	return fields, nil
}

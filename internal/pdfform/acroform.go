// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfform

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// collectFields walks every page's annotations and builds a Field for each
// widget. Walking pages rather than the AcroForm Fields array gives us the
// page number and rectangle for free, which the label search needs.
func collectFields(ctx *model.Context) ([]Field, error) {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	// A document without an AcroForm dictionary has no interactive form.
	acroObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, nil
	}
	if d, err := ctx.DereferenceDict(acroObj); err != nil || d == nil {
		return nil, nil
	}

	pagesObj, found := rootDict.Find("Pages")
	if !found {
		return nil, fmt.Errorf("catalog has no page tree")
	}

	var fields []Field
	pageNr := 0
	if err := walkPageTree(ctx, pagesObj, &pageNr, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// walkPageTree descends the Pages/Page node tree in document order,
// harvesting widget annotations from each leaf page.
func walkPageTree(ctx *model.Context, node pdftypes.Object, pageNr *int, fields *[]Field) error {
	dict, err := ctx.DereferenceDict(node)
	if err != nil || dict == nil {
		return err
	}

	if typ := dict.Type(); typ != nil && *typ == "Pages" {
		kidsObj, found := dict.Find("Kids")
		if !found {
			return nil
		}
		kids, err := ctx.DereferenceArray(kidsObj)
		if err != nil {
			return fmt.Errorf("dereferencing page tree kids: %w", err)
		}
		for _, kid := range kids {
			if err := walkPageTree(ctx, kid, pageNr, fields); err != nil {
				return err
			}
		}
		return nil
	}

	// Leaf page.
	*pageNr++
	annotsObj, found := dict.Find("Annots")
	if !found {
		return nil
	}
	annots, err := ctx.DereferenceArray(annotsObj)
	if err != nil {
		return nil
	}

	for _, annotRef := range annots {
		annot, err := ctx.DereferenceDict(annotRef)
		if err != nil || annot == nil {
			continue
		}
		if sub := annot.Subtype(); sub == nil || *sub != "Widget" {
			continue
		}
		f := widgetField(ctx, annot)
		f.Page = *pageNr
		*fields = append(*fields, f)
	}
	return nil
}

// widgetField assembles a Field from a widget annotation dictionary,
// resolving T/FT/V/TU through the Parent chain where they are inherited.
func widgetField(ctx *model.Context, annot pdftypes.Dict) Field {
	f := Field{
		Name:  inheritedString(ctx, annot, "T"),
		Label: inheritedString(ctx, annot, "TU"),
	}
	f.Type = fieldType(ctx, annot)
	f.Value = fieldValue(ctx, annot, f.Type)
	if f.Type == FieldSelect {
		f.Options = fieldOptions(ctx, annot)
	}
	if rectObj, found := annot.Find("Rect"); found {
		f.Rect = parseRect(ctx, rectObj)
	}
	return f
}

// inheritedString resolves a string entry on the annotation or, failing
// that, the nearest ancestor that defines it.
func inheritedString(ctx *model.Context, dict pdftypes.Dict, key string) string {
	if obj, found := dict.Find(key); found {
		if s, err := ctx.DereferenceStringOrHexLiteral(obj, model.V10, nil); err == nil && s != "" {
			return s
		}
	}
	if parentObj, found := dict.Find("Parent"); found {
		if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
			return inheritedString(ctx, parent, key)
		}
	}
	return ""
}

// fieldType maps the FT entry plus the Ff flag bits onto a FieldType.
// Radio is bit 16 of Ff, pushbutton bit 17; a plain Btn is a checkbox.
func fieldType(ctx *model.Context, dict pdftypes.Dict) FieldType {
	ftObj, found := dict.Find("FT")
	if !found {
		if parentObj, found := dict.Find("Parent"); found {
			if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
				return fieldType(ctx, parent)
			}
		}
		return FieldUnknown
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return FieldUnknown
	}

	switch ftName {
	case "Btn":
		if flags := fieldFlags(ctx, dict); flags != nil {
			if *flags&(1<<15) != 0 {
				return FieldRadio
			}
			if *flags&(1<<16) != 0 {
				return FieldButton
			}
		}
		return FieldCheckbox
	case "Tx":
		return FieldText
	case "Ch":
		return FieldSelect
	case "Sig":
		return FieldSignature
	default:
		return FieldUnknown
	}
}

func fieldFlags(ctx *model.Context, dict pdftypes.Dict) *int64 {
	flagsObj, found := dict.Find("Ff")
	if !found {
		if parentObj, found := dict.Find("Parent"); found {
			if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
				return fieldFlags(ctx, parent)
			}
		}
		return nil
	}
	flags, err := ctx.DereferenceInteger(flagsObj)
	if err != nil || flags == nil {
		return nil
	}
	v := int64(*flags)
	return &v
}

// fieldValue resolves V (inherited) as a string. Button values are PDF
// names ("Off", "Yes", export values); text and choice values are strings.
func fieldValue(ctx *model.Context, dict pdftypes.Dict, ft FieldType) string {
	valObj, found := dict.Find("V")
	if !found {
		if parentObj, found := dict.Find("Parent"); found {
			if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
				return fieldValue(ctx, parent, ft)
			}
		}
		return ""
	}

	switch ft {
	case FieldCheckbox, FieldRadio:
		if name, err := ctx.DereferenceName(valObj, model.V10, nil); err == nil {
			return string(name)
		}
	}
	if s, err := ctx.DereferenceStringOrHexLiteral(valObj, model.V10, nil); err == nil {
		return s
	}
	if name, err := ctx.DereferenceName(valObj, model.V10, nil); err == nil {
		return string(name)
	}
	return ""
}

// fieldOptions reads the Opt array of a choice field. Entries are either
// plain strings or [export, display] pairs; the display value wins.
func fieldOptions(ctx *model.Context, dict pdftypes.Dict) []string {
	optObj, found := dict.Find("Opt")
	if !found {
		return nil
	}
	arr, err := ctx.DereferenceArray(optObj)
	if err != nil {
		return nil
	}

	var options []string
	for _, opt := range arr {
		if s, err := ctx.DereferenceStringOrHexLiteral(opt, model.V10, nil); err == nil {
			options = append(options, s)
			continue
		}
		if pair, err := ctx.DereferenceArray(opt); err == nil && len(pair) >= 2 {
			if display, err := ctx.DereferenceStringOrHexLiteral(pair[1], model.V10, nil); err == nil {
				options = append(options, display)
			}
		}
	}
	return options
}

func parseRect(ctx *model.Context, rectObj pdftypes.Object) Rect {
	arr, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(arr) != 4 {
		return Rect{}
	}
	coords := make([]float64, 4)
	for i, c := range arr {
		if v, err := ctx.DereferenceNumber(c); err == nil {
			coords[i] = v
		}
	}
	return Rect{LLx: coords[0], LLy: coords[1], URx: coords[2], URy: coords[3]}
}

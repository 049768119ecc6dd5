// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template builds native ORKG templates from survey documents:
// a template resource linked to a target class, one parameter per
// question, datatype or option-class constraints per question type.
package template

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nlp4re/orkgforms/internal/orkg"
	"github.com/nlp4re/orkgforms/internal/survey"
	"github.com/nlp4re/orkgforms/pkg/types"
)

// Structural predicates of the ORKG template system. Resolved to real
// predicate IDs once per build and cached.
const (
	predTargetClass = "hasTargetClass"
	predParameter   = "hasParameter"
	predProperty    = "hasProperty"
	predOrder       = "hasOrder"
	predDatatype    = "hasDatatype"
	predClass       = "hasClass"
	predMaxCount    = "hasMaxCount"
)

// newID mints a prefixed entity ID: the prefix followed by ten hex
// characters of a random UUID.
func newID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s%x", prefix, u[:5])
}

// Builder creates template graphs through an ORKG client.
type Builder struct {
	client *orkg.Client

	// system predicate label -> resolved ID
	predicates map[string]string
}

// NewBuilder returns a Builder over the given client.
func NewBuilder(client *orkg.Client) *Builder {
	return &Builder{
		client:     client,
		predicates: make(map[string]string),
	}
}

// Parameter describes one created template parameter.
type Parameter struct {
	ID           string `json:"id" yaml:"id"`
	PredicateID  string `json:"predicate_id" yaml:"predicate_id"`
	QuestionText string `json:"question_text" yaml:"question_text"`
	QuestionType string `json:"question_type" yaml:"question_type"`
	Order        int    `json:"order" yaml:"order"`
}

// Info describes a created template.
type Info struct {
	ID            string      `json:"id" yaml:"id"`
	Label         string      `json:"label" yaml:"label"`
	TargetClassID string      `json:"target_class_id" yaml:"target_class_id"`
	Parameters    []Parameter `json:"parameters" yaml:"parameters"`
}

// URL returns the web address of the template on the given host.
func (i Info) URL(host string) string {
	return strings.TrimRight(host, "/") + "/template/" + i.ID
}

// Create builds a native ORKG template from the survey document: a
// template resource under a fresh T ID, a "<label> Instance" target
// class, and one parameter per valid question. Progress goes to w.
func (b *Builder) Create(ctx context.Context, doc types.Document, label string, w io.Writer) (Info, error) {
	templateID, err := b.client.CreateResource(ctx, label, nil, newID("T"))
	if err != nil {
		return Info{}, fmt.Errorf("creating template resource: %w", err)
	}

	targetClassID, err := b.client.CreateOrFindClass(ctx, label+" Instance", newID("C"))
	if err != nil {
		return Info{}, fmt.Errorf("creating target class: %w", err)
	}
	if err := b.link(ctx, templateID, predTargetClass, targetClassID); err != nil {
		return Info{}, err
	}

	info := Info{ID: templateID, Label: label, TargetClassID: targetClassID}

	for i, q := range doc.Questions {
		if !validQuestion(q) {
			continue
		}
		fmt.Fprintf(w, "parameter: %s\n", q.Text)

		param, err := b.createParameter(ctx, templateID, label, q, i, w)
		if err != nil {
			return Info{}, err
		}
		info.Parameters = append(info.Parameters, param)
	}

	fmt.Fprintf(w, "\ncreated template %q with ID %s (%d parameters)\n",
		label, templateID, len(info.Parameters))
	return info, nil
}

// createParameter creates one parameter resource, its predicate, and
// the constraint statements for the question type.
func (b *Builder) createParameter(ctx context.Context, templateID, templateLabel string, q types.Question, order int, w io.Writer) (Parameter, error) {
	paramID, err := b.client.CreateResource(ctx, "Parameter: "+q.Text, nil, newID("TP"))
	if err != nil {
		return Parameter{}, fmt.Errorf("creating parameter resource: %w", err)
	}

	predicateID, err := b.client.CreateOrFindPredicate(ctx, q.Text, newID("P"))
	if err != nil {
		return Parameter{}, fmt.Errorf("creating parameter predicate: %w", err)
	}

	if err := b.link(ctx, templateID, predParameter, paramID); err != nil {
		return Parameter{}, err
	}
	if err := b.link(ctx, paramID, predProperty, predicateID); err != nil {
		return Parameter{}, err
	}

	orderID, err := b.client.CreateLiteral(ctx, strconv.Itoa(order), "xsd:integer")
	if err != nil {
		return Parameter{}, fmt.Errorf("creating order literal: %w", err)
	}
	if err := b.link(ctx, paramID, predOrder, orderID); err != nil {
		return Parameter{}, err
	}

	if err := b.constrainParameter(ctx, paramID, templateLabel, q, w); err != nil {
		return Parameter{}, err
	}

	return Parameter{
		ID:           paramID,
		PredicateID:  predicateID,
		QuestionText: q.Text,
		QuestionType: string(q.Type),
		Order:        order,
	}, nil
}

// constrainParameter adds the type-dependent constraints: a String
// datatype for text questions, an option class (and option resources)
// for choice questions, with max count 1 for radio groups.
func (b *Builder) constrainParameter(ctx context.Context, paramID, templateLabel string, q types.Question, w io.Writer) error {
	switch q.Type {
	case types.QuestionText:
		datatypeID, err := b.client.CreateLiteral(ctx, "String", "")
		if err != nil {
			return fmt.Errorf("creating datatype literal: %w", err)
		}
		if err := b.link(ctx, paramID, predDatatype, datatypeID); err != nil {
			return err
		}
		fmt.Fprintln(w, "  datatype: String")

	case types.QuestionRadio, types.QuestionCheckbox:
		optionsLabel := fmt.Sprintf("%s: %s Options", templateLabel, q.Text)
		optionsClassID, err := b.client.CreateOrFindClass(ctx, optionsLabel, newID("OC"))
		if err != nil {
			return fmt.Errorf("creating options class: %w", err)
		}
		if err := b.link(ctx, paramID, predClass, optionsClassID); err != nil {
			return err
		}

		if q.Type == types.QuestionRadio {
			maxCountID, err := b.client.CreateLiteral(ctx, "1", "xsd:integer")
			if err != nil {
				return fmt.Errorf("creating max count literal: %w", err)
			}
			if err := b.link(ctx, paramID, predMaxCount, maxCountID); err != nil {
				return err
			}
		}

		created := 0
		for _, option := range q.AllOptions {
			if strings.TrimSpace(option) == "" {
				continue
			}
			if _, err := b.client.CreateResource(ctx, option, []string{optionsClassID}, newID("O")); err != nil {
				return fmt.Errorf("creating option resource %q: %w", option, err)
			}
			created++
		}
		fmt.Fprintf(w, "  options class %q with %d options\n", optionsLabel, created)
	}

	return nil
}

// link adds a statement using a structural predicate, resolving the
// predicate label to an ID on first use.
func (b *Builder) link(ctx context.Context, subjectID, predicateLabel, objectID string) error {
	predicateID, ok := b.predicates[predicateLabel]
	if !ok {
		var err error
		predicateID, err = b.client.CreateOrFindPredicate(ctx, predicateLabel, "")
		if err != nil {
			return fmt.Errorf("resolving predicate %q: %w", predicateLabel, err)
		}
		b.predicates[predicateLabel] = predicateID
	}
	return b.client.AddStatement(ctx, subjectID, predicateID, objectID)
}

// validQuestion reports whether a question becomes a template parameter.
func validQuestion(q types.Question) bool {
	if q.Text == "" || q.Type == "" {
		return false
	}
	return q.Text != survey.GenerateAppearancesField
}

// Status describes the structure found when verifying a template.
type Status struct {
	TemplateID    string
	TargetClassID string
	Parameters    int
}

// Materialized reports whether the template graph is complete enough to
// accept instances: it has a target class and at least one parameter.
func (s Status) Materialized() bool {
	return s.TargetClassID != "" && s.Parameters > 0
}

// Verify inspects an existing template's statements and reports its
// target class and parameter count.
func (b *Builder) Verify(ctx context.Context, templateID string) (Status, error) {
	stmts, err := b.client.StatementsBySubject(ctx, templateID)
	if err != nil {
		return Status{}, fmt.Errorf("reading template %s: %w", templateID, err)
	}

	status := Status{TemplateID: templateID}
	for _, st := range stmts {
		switch st.Predicate.Label {
		case predTargetClass:
			status.TargetClassID = st.Object.ID
		case predParameter:
			status.Parameters++
		}
	}
	return status, nil
}

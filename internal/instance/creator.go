// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instance

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nlp4re/orkgforms/internal/orkg"
	"github.com/nlp4re/orkgforms/internal/survey"
	"github.com/nlp4re/orkgforms/pkg/types"
)

// Published IDs of the NLP4RE ID card template on incubating.orkg.org.
const (
	DefaultTemplateID  = "R1544125"
	DefaultTargetClass = "C121001"
)

// Creator builds template instances from survey documents.
type Creator struct {
	client          *orkg.Client
	templateID      string
	targetClassID   string
	out             io.Writer
	templateChecked bool
}

// NewCreator returns a Creator writing progress to w.
func NewCreator(client *orkg.Client, cfg types.InstanceConfig, w io.Writer) *Creator {
	templateID := cfg.TemplateID
	if templateID == "" {
		templateID = DefaultTemplateID
	}
	targetClass := cfg.TargetClassID
	if targetClass == "" {
		targetClass = DefaultTargetClass
	}
	return &Creator{
		client:        client,
		templateID:    templateID,
		targetClassID: targetClass,
		out:           w,
	}
}

// CreateFromFile loads a survey document and creates its instance.
func (c *Creator) CreateFromFile(ctx context.Context, path string) (string, error) {
	doc, err := survey.LoadDocument(path)
	if err != nil {
		return "", err
	}
	return c.Create(ctx, doc)
}

// Create builds the full instance graph for one document: the paper
// resource in the target class, one component resource per section with
// children, and curated-resource or literal values per question. It
// returns the paper resource ID.
func (c *Creator) Create(ctx context.Context, doc types.Document) (string, error) {
	if err := c.checkTemplate(ctx); err != nil {
		return "", err
	}

	title := paperTitle(doc)
	fmt.Fprintf(c.out, "creating instance for %q\n", title)

	instanceID, err := c.client.CreateResource(ctx, title, []string{c.targetClassID}, "")
	if err != nil {
		return "", fmt.Errorf("creating paper resource: %w", err)
	}
	fmt.Fprintf(c.out, "paper resource: %s\n", instanceID)

	for _, prop := range Catalog() {
		fmt.Fprintf(c.out, "section: %s\n", prop.Label)
		if err := c.populate(ctx, instanceID, prop, doc); err != nil {
			return "", err
		}
	}

	return instanceID, nil
}

// checkTemplate looks up the published template's statements once per
// Creator and warns when the graph looks empty. Instances are still
// created: the template may simply live on another ORKG instance.
func (c *Creator) checkTemplate(ctx context.Context) error {
	if c.templateChecked {
		return nil
	}

	stmts, err := c.client.StatementsBySubject(ctx, c.templateID)
	if err != nil {
		return fmt.Errorf("checking template %s: %w", c.templateID, err)
	}
	if len(stmts) == 0 {
		fmt.Fprintf(c.out, "warning: template %s has no statements on this host\n", c.templateID)
	} else {
		fmt.Fprintf(c.out, "using template %s (%d statements)\n", c.templateID, len(stmts))
	}

	c.templateChecked = true
	return nil
}

// paperTitle derives the instance label: the PDF name without its
// extension, falling back to the title question's answer.
func paperTitle(doc types.Document) string {
	if doc.PDFName != "" {
		return strings.TrimSuffix(doc.PDFName, ".pdf")
	}
	for _, q := range doc.Questions {
		if strings.Contains(strings.ToLower(q.Text), "title") && q.Answer != "" {
			return q.Answer
		}
	}
	return "Unknown Paper"
}

// populate attaches one property to subject: a component resource with
// its children for subtemplate properties, direct values otherwise.
func (c *Creator) populate(ctx context.Context, subjectID string, prop Property, doc types.Document) error {
	if len(prop.Children) > 0 {
		componentID, filled, err := c.createComponent(ctx, prop, doc)
		if err != nil {
			return err
		}
		if !filled {
			fmt.Fprintf(c.out, "  %s: no answers, skipped\n", prop.Label)
			return nil
		}
		if err := c.client.AddStatement(ctx, subjectID, prop.ID, componentID); err != nil {
			return fmt.Errorf("linking %s: %w", prop.Label, err)
		}
		return nil
	}

	values, err := c.propertyValues(ctx, prop, doc)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		fmt.Fprintf(c.out, "  %s: no answers, skipped\n", prop.Label)
		return nil
	}
	for _, objectID := range values {
		if err := c.client.AddStatement(ctx, subjectID, prop.ID, objectID); err != nil {
			return fmt.Errorf("linking %s: %w", prop.Label, err)
		}
	}
	fmt.Fprintf(c.out, "  %s: %d value(s)\n", prop.Label, len(values))
	return nil
}

// createComponent resolves a subtemplate property's children and, when
// any of them produced a value, creates the component resource and
// attaches them. filled is false when every child was empty; no
// resource is created then.
func (c *Creator) createComponent(ctx context.Context, prop Property, doc types.Document) (string, bool, error) {
	type link struct {
		predicateID string
		objectID    string
	}
	var links []link

	for _, child := range prop.Children {
		if len(child.Children) > 0 {
			nestedID, nestedFilled, err := c.createComponent(ctx, child, doc)
			if err != nil {
				return "", false, err
			}
			if nestedFilled {
				links = append(links, link{child.ID, nestedID})
			}
			continue
		}

		values, err := c.propertyValues(ctx, child, doc)
		if err != nil {
			return "", false, err
		}
		for _, objectID := range values {
			links = append(links, link{child.ID, objectID})
		}
		if len(values) > 0 {
			fmt.Fprintf(c.out, "  %s: %d value(s)\n", child.Label, len(values))
		}
	}

	if len(links) == 0 {
		return "", false, nil
	}

	var classes []string
	if prop.ClassID != "" {
		classes = []string{prop.ClassID}
	}
	componentID, err := c.client.CreateResource(ctx, prop.Label, classes, "")
	if err != nil {
		return "", false, fmt.Errorf("creating %s component: %w", prop.Label, err)
	}
	for _, l := range links {
		if err := c.client.AddStatement(ctx, componentID, l.predicateID, l.objectID); err != nil {
			return "", false, fmt.Errorf("linking into %s: %w", prop.Label, err)
		}
	}
	return componentID, true, nil
}

// propertyValues resolves a leaf property's answers into entity IDs:
// curated resources first, then fresh resources for Other answers,
// literals for free-text keys, and fresh catalog resources for any
// remaining answers under a curated key.
func (c *Creator) propertyValues(ctx context.Context, prop Property, doc types.Document) ([]string, error) {
	var answers []string
	for _, code := range prop.QuestionCodes {
		q, ok := survey.FindByCode(doc.Questions, code)
		if !ok {
			continue
		}
		answers = append(answers, survey.Answers(q)...)
	}
	if prop.CommaSeparated {
		answers = survey.SplitCommaSeparated(answers)
	}

	var ids []string
	for _, answer := range answers {
		id, err := c.resolveAnswer(ctx, answer, prop.MappingKey)
		if err != nil {
			return nil, err
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *Creator) resolveAnswer(ctx context.Context, answer, key string) (string, error) {
	if id := MapAnswer(answer, key); id != "" {
		fmt.Fprintf(c.out, "    %q -> %s\n", answer, id)
		return id, nil
	}

	if label, ok := OtherLabel(answer); ok {
		return c.createCatalogResource(ctx, label, key)
	}

	if literalKeys[key] {
		id, err := c.client.CreateLiteral(ctx, answer, "")
		if err != nil {
			return "", fmt.Errorf("creating literal %q: %w", answer, err)
		}
		fmt.Fprintf(c.out, "    literal %q -> %s\n", answer, id)
		return id, nil
	}

	if HasMappings(key) {
		return c.createCatalogResource(ctx, answer, key)
	}

	return "", nil
}

// createCatalogResource returns a resource in the catalog class for the
// mapping key, reusing an existing resource with the exact label so
// reruns do not pile up duplicates. Answers whose key has no catalog
// class are dropped.
func (c *Creator) createCatalogResource(ctx context.Context, label, key string) (string, error) {
	classID, ok := classMappings[key]
	if !ok {
		return "", nil
	}
	if id, err := c.client.FindResource(ctx, label); err != nil {
		return "", err
	} else if id != "" {
		fmt.Fprintf(c.out, "    %q -> %s\n", label, id)
		return id, nil
	}
	id, err := c.client.CreateResource(ctx, label, []string{classID}, "")
	if err != nil {
		return "", fmt.Errorf("creating resource %q: %w", label, err)
	}
	fmt.Fprintf(c.out, "    new resource %q -> %s\n", label, id)
	return id, nil
}

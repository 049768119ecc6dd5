// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orkg

import (
	"context"
	"fmt"
	"net/url"
	"sort"
)

const (
	classesPath    = "/api/classes/"
	predicatesPath = "/api/predicates/"
	resourcesPath  = "/api/resources/"
	literalsPath   = "/api/literals/"
	statementsPath = "/api/statements/"
)

// findExact looks up entities by exact label.
func (c *Client) findExact(ctx context.Context, path, label string) ([]Entity, error) {
	return c.list(ctx, path, url.Values{"q": {label}, "exact": {"true"}})
}

// newestByLabel returns the most recently created entity with the label,
// used as a fallback when a create response carries no usable ID.
func (c *Client) newestByLabel(ctx context.Context, path, label string) (string, error) {
	items, err := c.list(ctx, path, url.Values{"q": {label}})
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", fmt.Errorf("no entity with label %q", label)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items[0].ID, nil
}

// createOrFind returns the ID of an existing entity with the exact label,
// creating it when none exists. A non-empty customID is passed through on
// creation, as the template builder mints its own prefixed IDs.
func (c *Client) createOrFind(ctx context.Context, path, kind, label, customID string) (string, error) {
	existing, err := c.findExact(ctx, path, label)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}

	body := map[string]any{"label": label}
	if customID != "" {
		body["id"] = customID
	}
	var created Entity
	if err := c.post(ctx, path, body, &created); err != nil {
		return "", fmt.Errorf("creating %s %q: %w", kind, label, err)
	}
	if created.ID != "" {
		return created.ID, nil
	}
	if customID != "" {
		return customID, nil
	}
	return c.newestByLabel(ctx, path, label)
}

// CreateOrFindClass returns the ID of the class with the label, creating
// it (optionally under a custom ID) when missing.
func (c *Client) CreateOrFindClass(ctx context.Context, label, customID string) (string, error) {
	return c.createOrFind(ctx, classesPath, "class", label, customID)
}

// CreateOrFindPredicate returns the ID of the predicate with the label,
// creating it when missing.
func (c *Client) CreateOrFindPredicate(ctx context.Context, label, customID string) (string, error) {
	return c.createOrFind(ctx, predicatesPath, "predicate", label, customID)
}

// CreateResource creates a resource with the label and class memberships.
// Unlike classes and predicates, resources are not deduplicated by label:
// every paper instance is its own resource.
func (c *Client) CreateResource(ctx context.Context, label string, classes []string, customID string) (string, error) {
	if classes == nil {
		classes = []string{}
	}
	body := map[string]any{"label": label, "classes": classes}
	if customID != "" {
		body["id"] = customID
	}

	var created Entity
	if err := c.post(ctx, resourcesPath, body, &created); err != nil {
		return "", fmt.Errorf("creating resource %q: %w", label, err)
	}
	if created.ID != "" {
		return created.ID, nil
	}
	if customID != "" {
		return customID, nil
	}
	return c.newestByLabel(ctx, resourcesPath, label)
}

// FindResource returns the ID of an existing resource with the exact
// label, or "" when none exists.
func (c *Client) FindResource(ctx context.Context, label string) (string, error) {
	items, err := c.findExact(ctx, resourcesPath, label)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", nil
	}
	return items[0].ID, nil
}

// CreateLiteral returns the ID of a literal with the label and datatype,
// reusing an existing literal with the exact label when one exists so
// reruns stay idempotent.
func (c *Client) CreateLiteral(ctx context.Context, label, datatype string) (string, error) {
	if datatype == "" {
		datatype = "xsd:string"
	}

	existing, err := c.findExact(ctx, literalsPath, label)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}

	var created Entity
	if err := c.post(ctx, literalsPath, map[string]any{"label": label, "datatype": datatype}, &created); err != nil {
		return "", fmt.Errorf("creating literal %q: %w", label, err)
	}
	if created.ID != "" {
		return created.ID, nil
	}
	return c.newestByLabel(ctx, literalsPath, label)
}

// AddStatement records a (subject, predicate, object) triple.
func (c *Client) AddStatement(ctx context.Context, subjectID, predicateID, objectID string) error {
	body := map[string]string{
		"subject_id":   subjectID,
		"predicate_id": predicateID,
		"object_id":    objectID,
	}
	if err := c.post(ctx, statementsPath, body, nil); err != nil {
		return fmt.Errorf("adding statement %s -%s-> %s: %w", subjectID, predicateID, objectID, err)
	}
	return nil
}

// StatementsBySubject lists all statements whose subject is the given
// resource. Used to verify template structure after creation.
func (c *Client) StatementsBySubject(ctx context.Context, subjectID string) ([]Statement, error) {
	var raw struct {
		Content []Statement `json:"content"`
	}
	if err := c.get(ctx, statementsPath+"subject/"+subjectID+"/", url.Values{"size": {"200"}}, &raw); err != nil {
		return nil, err
	}
	return raw.Content, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlp4re/orkgforms/internal/orkg"
	"github.com/nlp4re/orkgforms/pkg/types"
)

// fakeORKG records created resources, literals, and statements, handing
// out sequential IDs. Lookups always miss.
type fakeORKG struct {
	mu         sync.Mutex
	seq        int
	resources  map[string]map[string]any // id -> posted body
	literals   map[string]string         // id -> label
	statements []map[string]string
}

func (f *fakeORKG) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if r.Method == http.MethodGet {
			w.Write([]byte(`{"content": []}`))
			return
		}

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)

		switch {
		case strings.HasPrefix(r.URL.Path, "/api/statements/"):
			f.statements = append(f.statements, map[string]string{
				"subject":   body["subject_id"].(string),
				"predicate": body["predicate_id"].(string),
				"object":    body["object_id"].(string),
			})
			w.Write([]byte(`{"id": "S1"}`))
		case strings.HasPrefix(r.URL.Path, "/api/literals/"):
			f.seq++
			id := fmt.Sprintf("L%d", f.seq)
			f.literals[id] = body["label"].(string)
			fmt.Fprintf(w, `{"id": %q}`, id)
		default:
			f.seq++
			id := fmt.Sprintf("FR%d", f.seq)
			f.resources[id] = body
			fmt.Fprintf(w, `{"id": %q}`, id)
		}
	}
}

func (f *fakeORKG) resourceByLabel(label string) (string, map[string]any) {
	for id, body := range f.resources {
		if body["label"] == label {
			return id, body
		}
	}
	return "", nil
}

func (f *fakeORKG) objectsOf(subject, predicate string) []string {
	var out []string
	for _, st := range f.statements {
		if st["subject"] == subject && st["predicate"] == predicate {
			out = append(out, st["object"])
		}
	}
	return out
}

func newFakeCreator(t *testing.T) (*fakeORKG, *Creator) {
	f := &fakeORKG{
		resources: make(map[string]map[string]any),
		literals:  make(map[string]string),
	}
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)

	client := orkg.New(types.ORKGConfig{Host: ts.URL})
	return f, NewCreator(client, types.InstanceConfig{}, io.Discard)
}

func TestCreateInstance(t *testing.T) {
	f, c := newFakeCreator(t)

	doc := types.Document{
		PDFName: "Example1-Yang-etal-2011.pdf",
		Questions: []types.Question{
			{
				Text: "I.1. What RE task is your study addressing?",
				Type: types.QuestionRadio, SelectedAnswers: []string{"Requirements tracing"},
			},
			{
				Text: "IV.2. In which year or interval of year were the data produced?",
				Type: types.QuestionText, Answer: "2019",
			},
			{
				Text: "IV.8. Please list which domains your data belongs to?",
				Type: types.QuestionText, Answer: "automotive, satellite",
			},
			{
				Text: "V.7. Did you share other information to support annotators?",
				Type: types.QuestionCheckbox, SelectedAnswers: []string{"Other/Comments"},
			},
		},
	}

	instanceID, err := c.Create(context.Background(), doc)
	require.NoError(t, err)

	// Paper resource carries the default target class and the trimmed name.
	paperID, paper := f.resourceByLabel("Example1-Yang-etal-2011")
	require.NotEmpty(t, paperID)
	assert.Equal(t, instanceID, paperID)
	assert.Equal(t, []any{DefaultTargetClass}, paper["classes"])

	// Curated answer resolves to the published resource ID.
	assert.Equal(t, []string{"R1544133"}, f.objectsOf(instanceID, "P181002"))

	// The dataset section is a component in its class, holding the
	// production-time literal and a nested data source component.
	datasetID, dataset := f.resourceByLabel("NLP dataset")
	require.NotEmpty(t, datasetID)
	assert.Equal(t, []any{"C121010"}, dataset["classes"])
	assert.Equal(t, []string{datasetID}, f.objectsOf(instanceID, "P181011"))

	years := f.objectsOf(datasetID, "P181016")
	require.Len(t, years, 1)
	assert.Equal(t, "2019", f.literals[years[0]])

	sourceID, _ := f.resourceByLabel("NLP data source")
	require.NotEmpty(t, sourceID)
	assert.Equal(t, []string{sourceID}, f.objectsOf(datasetID, "P181017"))

	// Comma-separated domains become two fresh resources in the
	// catalog class for the key.
	domains := f.objectsOf(sourceID, "P181020")
	require.Len(t, domains, 2)
	for _, id := range domains {
		assert.Equal(t, []any{"C121053"}, f.resources[id]["classes"])
	}
	autoID, _ := f.resourceByLabel("automotive")
	assert.Contains(t, domains, autoID)

	// A bare Other selection becomes an "Unknown" resource.
	unknownID, unknown := f.resourceByLabel("Unknown")
	require.NotEmpty(t, unknownID)
	assert.Equal(t, []any{"C121033"}, unknown["classes"])

	// Sections with no answers create no component resources.
	evalID, _ := f.resourceByLabel("Evaluation")
	assert.Empty(t, evalID)
	assert.Empty(t, f.objectsOf(instanceID, "P181053"))
}

func TestCreateChecksTemplate(t *testing.T) {
	f := &fakeORKG{
		resources: make(map[string]map[string]any),
		literals:  make(map[string]string),
	}
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)
	client := orkg.New(types.ORKGConfig{Host: ts.URL})

	var out bytes.Buffer
	c := NewCreator(client, types.InstanceConfig{TemplateID: "R999"}, &out)

	_, err := c.Create(context.Background(), types.Document{PDFName: "a.pdf"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "template R999")

	// The template lookup happens once per creator.
	out.Reset()
	_, err = c.Create(context.Background(), types.Document{PDFName: "b.pdf"})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "template R999")

	defaulted := NewCreator(client, types.InstanceConfig{}, io.Discard)
	assert.Equal(t, DefaultTemplateID, defaulted.templateID)
}

func TestPaperTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  types.Document
		want string
	}{
		{
			"pdf name trimmed",
			types.Document{PDFName: "paper.pdf"},
			"paper",
		},
		{
			"falls back to title answer",
			types.Document{Questions: []types.Question{
				{Text: "Title and Authors", Type: types.QuestionText, Answer: "A Study"},
			}},
			"A Study",
		},
		{
			"nothing known",
			types.Document{},
			"Unknown Paper",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paperTitle(tt.doc))
		})
	}
}

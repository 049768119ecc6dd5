// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orkg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlp4re/orkgforms/pkg/types"
)

// newTestClient wires a Client to an httptest server without credentials,
// so no token round trip happens.
func newTestClient(ts *httptest.Server) *Client {
	c := New(types.ORKGConfig{Host: ts.URL})
	c.httpClient = ts.Client()
	return c
}

func TestListPage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"paged shape", `{"content": [{"id": "C1"}, {"id": "C2"}]}`, 2},
		{"bare array", `[{"id": "P1"}]`, 1},
		{"empty page", `{"content": []}`, 0},
		{"unrelated object", `{"foo": 1}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listPage(json.RawMessage(tt.raw))
			assert.Len(t, got, tt.want)
		})
	}
}

func TestCreateOrFindClass_FindsExisting(t *testing.T) {
	var posts int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "true", r.URL.Query().Get("exact"))
			assert.Equal(t, "Paper Survey", r.URL.Query().Get("q"))
			w.Write([]byte(`{"content": [{"id": "C121001", "label": "Paper Survey"}]}`))
		case http.MethodPost:
			posts++
			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer ts.Close()

	id, err := newTestClient(ts).CreateOrFindClass(context.Background(), "Paper Survey", "")
	require.NoError(t, err)
	assert.Equal(t, "C121001", id)
	assert.Zero(t, posts, "existing class must not be recreated")
}

func TestCreateOrFindClass_CreatesWithCustomID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"content": []}`))
		case http.MethodPost:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Options Class", body["label"])
			assert.Equal(t, "OC12345", body["id"])
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "OC12345", "label": "Options Class"}`))
		}
	}))
	defer ts.Close()

	id, err := newTestClient(ts).CreateOrFindClass(context.Background(), "Options Class", "OC12345")
	require.NoError(t, err)
	assert.Equal(t, "OC12345", id)
}

func TestCreateOrFindPredicate_FallsBackToNewest(t *testing.T) {
	exactCalls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Query().Get("exact") == "true":
			exactCalls++
			w.Write([]byte(`{"content": []}`))
		case r.Method == http.MethodGet:
			// Non-exact listing, out of creation order.
			w.Write([]byte(`{"content": [
				{"id": "P1", "label": "RE task", "created_at": "2023-01-01T00:00:00Z"},
				{"id": "P2", "label": "RE task", "created_at": "2024-06-01T00:00:00Z"}
			]}`))
		case r.Method == http.MethodPost:
			// Created, but the response body carries no ID.
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
		}
	}))
	defer ts.Close()

	id, err := newTestClient(ts).CreateOrFindPredicate(context.Background(), "RE task", "")
	require.NoError(t, err)
	assert.Equal(t, "P2", id, "newest entity wins the fallback lookup")
	assert.Equal(t, 1, exactCalls)
}

func TestCreateResource_NoDeduplication(t *testing.T) {
	var posted map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "R900", "label": "Paper - 20240601_120000"}`))
	}))
	defer ts.Close()

	id, err := newTestClient(ts).CreateResource(context.Background(), "Paper - 20240601_120000", []string{"C121001"}, "")
	require.NoError(t, err)
	assert.Equal(t, "R900", id)
	assert.Equal(t, []any{"C121001"}, posted["classes"])
}

func TestCreateLiteral_ReusesExisting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"content": [{"id": "L77", "label": "85% accuracy"}]}`))
	}))
	defer ts.Close()

	id, err := newTestClient(ts).CreateLiteral(context.Background(), "85% accuracy", "")
	require.NoError(t, err)
	assert.Equal(t, "L77", id)
}

func TestAddStatement(t *testing.T) {
	var body map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/statements/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "S1"}`))
	}))
	defer ts.Close()

	err := newTestClient(ts).AddStatement(context.Background(), "R1", "P1", "L1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"subject_id":   "R1",
		"predicate_id": "P1",
		"object_id":    "L1",
	}, body)
}

func TestStatementsBySubject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/statements/subject/T123/", r.URL.Path)
		w.Write([]byte(`{"content": [
			{"id": "S1", "predicate": {"id": "P1", "label": "hasTargetClass"}, "object": {"id": "C5"}},
			{"id": "S2", "predicate": {"id": "P2", "label": "hasParameter"}, "object": {"id": "TP1"}}
		]}`))
	}))
	defer ts.Close()

	stmts, err := newTestClient(ts).StatementsBySubject(context.Background(), "T123")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, "hasTargetClass", stmts[0].Predicate.Label)
}

func TestPostReportsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"content": []}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateOrFindClass(context.Background(), "Denied", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orkg is a thin client for the Open Research Knowledge Graph REST
// API: classes, predicates, resources, literals and statements, with the
// create-or-find semantics the form pipeline relies on.
package orkg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nlp4re/orkgforms/internal/httputil"
	"github.com/nlp4re/orkgforms/pkg/types"
)

// DefaultHost is the ORKG instance the NLP4RE ID card templates live on.
const DefaultHost = "https://incubating.orkg.org"

// Client talks to one ORKG instance.
type Client struct {
	host       string
	httpClient *http.Client
	userAgent  string
	maxRetries int

	email    string
	password string
	token    string
}

// New builds a client from configuration. Credentials are optional; reads
// work unauthenticated, writes against a real instance need them.
func New(cfg types.ORKGConfig) *Client {
	host := strings.TrimRight(cfg.Host, "/")
	if host == "" {
		host = DefaultHost
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "orkgforms/0.1"
	}
	return &Client{
		host:       host,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  ua,
		maxRetries: cfg.MaxRetries,
		email:      cfg.Email,
		password:   cfg.Password,
	}
}

// Entity is the common shape of ORKG classes, predicates, resources and
// literals as the API returns them.
type Entity struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	CreatedAt string   `json:"created_at"`
	Classes   []string `json:"classes,omitempty"`
	Datatype  string   `json:"datatype,omitempty"`
}

// Statement links a subject to an object through a predicate. List
// endpoints return the three parts expanded as entities.
type Statement struct {
	ID        string `json:"id,omitempty"`
	Subject   Entity `json:"subject,omitempty"`
	Predicate Entity `json:"predicate,omitempty"`
	Object    Entity `json:"object,omitempty"`
}

// tokenResponse is the OAuth password-grant reply.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// authenticate fetches an access token using the password grant the ORKG
// frontend client uses. Called lazily before the first write.
func (c *Client) authenticate(ctx context.Context) error {
	if c.token != "" || c.email == "" {
		return nil
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {c.email},
		"password":   {c.password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("orkg-client", "secret")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting ORKG token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ORKG token endpoint returned HTTP %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}
	if tr.AccessToken == "" {
		return fmt.Errorf("ORKG token response carried no access token")
	}
	c.token = tr.AccessToken
	return nil
}

// get issues a GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.host + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("ORKG request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ORKG %s returned HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing ORKG response from %s: %w", path, err)
	}
	return nil
}

// post issues an authenticated POST with a JSON body and decodes the
// created entity into out when out is non-nil.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if err := c.authenticate(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("ORKG request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("ORKG %s returned HTTP %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing ORKG response from %s: %w", path, err)
	}
	return nil
}

// listPage normalizes the two shapes ORKG list endpoints return: a paged
// object with a "content" array, or a bare array.
func listPage(raw json.RawMessage) []Entity {
	var page struct {
		Content []Entity `json:"content"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Content != nil {
		return page.Content
	}
	var items []Entity
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	return nil
}

// list fetches a list endpoint and normalizes the result.
func (c *Client) list(ctx context.Context, path string, query url.Values) ([]Entity, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return listPage(raw), nil
}

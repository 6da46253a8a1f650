// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// maxPages is the upper bound on FetchAll pagination to avoid runaway requests.
	maxPages = 10

	// maxJSONResponseBytes is the upper bound on JSON API response size (4 MB).
	// Prevents unbounded memory consumption from malicious or malformed responses.
	maxJSONResponseBytes = 4 << 20
)

type (
	// HTTPClient talks to the command registry's HTTP API.
	HTTPClient struct {
		httpClient *http.Client
		baseURL    string // API base URL, overridable for tests
		appID      string // Application whose registries are addressed
		token      string // Bearer token for authenticated requests
		userAgent  string // User-Agent header value
	}

	// ClientOption configures an HTTPClient during construction.
	ClientOption func(*HTTPClient)

	// apiErrorBody is the JSON wire format of an error response.
	apiErrorBody struct {
		Message string `json:"message"`
	}
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(h *HTTPClient) {
		h.httpClient = c
	}
}

// WithBaseURL overrides the registry API base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(h *HTTPClient) {
		h.baseURL = strings.TrimRight(base, "/")
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) ClientOption {
	return func(h *HTTPClient) {
		h.token = token
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(h *HTTPClient) {
		h.userAgent = ua
	}
}

// NewHTTPClient creates an HTTPClient for the given application ID.
// Defaults: httpClient=http.DefaultClient, userAgent="cmdsync/dev".
// The base URL has no default; it comes from configuration.
func NewHTTPClient(appID string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		httpClient: http.DefaultClient,
		appID:      appID,
		userAgent:  "cmdsync/dev",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// commandsURL returns the command collection URL for one registry:
// the application's global registry when workspaceID is "", otherwise the
// workspace-scoped registry.
func (c *HTTPClient) commandsURL(workspaceID string) string {
	if workspaceID == "" {
		return fmt.Sprintf("%s/v1/apps/%s/commands", c.baseURL, url.PathEscape(c.appID))
	}
	return fmt.Sprintf("%s/v1/apps/%s/workspaces/%s/commands",
		c.baseURL, url.PathEscape(c.appID), url.PathEscape(workspaceID))
}

// FetchAll returns every published entry for one registry, following
// Link-header pagination up to maxPages.
func (c *HTTPClient) FetchAll(ctx context.Context, workspaceID string) ([]Entry, error) {
	pageURL := c.commandsURL(workspaceID)

	var all []Entry

	for page := 0; page < maxPages && pageURL != ""; page++ {
		resp, err := c.doRequest(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching commands: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			defer func() { _ = resp.Body.Close() }() // error path; body only read for the message
			return nil, fmt.Errorf("fetching commands: %w", apiError(resp))
		}

		var entries []Entry
		decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&entries)
		resp.Body.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("fetching commands: decoding response: %w", decodeErr)
		}

		all = append(all, entries...)
		pageURL = parseLinkHeader(resp.Header.Get("Link"))
	}

	return all, nil
}

// Create publishes a new command in one registry.
func (c *HTTPClient) Create(ctx context.Context, workspaceID string, entry NewEntry) (Entry, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.commandsURL(workspaceID), entry)
	if err != nil {
		return Entry{}, fmt.Errorf("creating command %q: %w", entry.Name, err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("creating command %q: %w", entry.Name, apiError(resp))
	}

	var created Entry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&created); err != nil {
		return Entry{}, fmt.Errorf("creating command %q: decoding response: %w", entry.Name, err)
	}

	return created, nil
}

// Edit overwrites an existing command identified by its remote ID.
func (c *HTTPClient) Edit(ctx context.Context, workspaceID, commandID string, entry NewEntry) (Entry, error) {
	editURL := c.commandsURL(workspaceID) + "/" + url.PathEscape(commandID)

	resp, err := c.doRequest(ctx, http.MethodPatch, editURL, entry)
	if err != nil {
		return Entry{}, fmt.Errorf("editing command %q: %w", entry.Name, err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	if resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("editing command %q: %w", entry.Name, apiError(resp))
	}

	var edited Entry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&edited); err != nil {
		return Entry{}, fmt.Errorf("editing command %q: decoding response: %w", entry.Name, err)
	}

	return edited, nil
}

// ResolveWorkspace resolves a workspace ID to a live handle. A 404 maps to
// ErrWorkspaceNotFound so callers can distinguish "no such workspace" from
// transport or permission failures.
func (c *HTTPClient) ResolveWorkspace(ctx context.Context, id string) (Workspace, error) {
	wsURL := fmt.Sprintf("%s/v1/apps/%s/workspaces/%s",
		c.baseURL, url.PathEscape(c.appID), url.PathEscape(id))

	resp, err := c.doRequest(ctx, http.MethodGet, wsURL, nil)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolving workspace %q: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	if resp.StatusCode == http.StatusNotFound {
		return Workspace{}, fmt.Errorf("resolving workspace %q: %w", id, ErrWorkspaceNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return Workspace{}, fmt.Errorf("resolving workspace %q: %w", id, apiError(resp))
	}

	var ws Workspace
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&ws); err != nil {
		return Workspace{}, fmt.Errorf("resolving workspace %q: decoding response: %w", id, err)
	}

	return ws, nil
}

// doRequest creates and executes an HTTP request with common registry API
// headers. A non-nil body is JSON-encoded.
func (c *HTTPClient) doRequest(ctx context.Context, method, reqURL string, body any) (*http.Response, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

// apiError reads a best-effort error message from a non-2xx response body
// and wraps it in an APIError. Body read errors are ignored; the status code
// alone is still a useful diagnostic.
func apiError(resp *http.Response) error {
	var body apiErrorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&body) //nolint:errcheck // Best-effort message extraction.

	return &APIError{
		Status:  resp.StatusCode,
		Message: body.Message,
	}
}

// parseLinkHeader extracts the URL for the "next" page from an RFC 8288 Link
// header. Returns an empty string if no next page exists.
//
// Example header: <https://registry.example/...?page=2>; rel="next", <...>; rel="last"
func parseLinkHeader(header string) string {
	if header == "" {
		return ""
	}

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if !strings.Contains(part, `rel="next"`) {
			continue
		}

		// Extract URL between < and >
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}

	return ""
}

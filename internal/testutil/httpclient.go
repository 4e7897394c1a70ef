package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/aks-labs/website/domain/docs"
)

// HTTPClient is an HTTP-only test client that can hit either:
// - An in-process test server (via httptest)
// - An external server (via real HTTP)
//
// This allows the same tests to run against a locally built binary or a
// deployed instance.
type HTTPClient struct {
	// For in-process testing
	inProcessHandler http.Handler

	// For external server testing
	baseURL    string
	httpClient *http.Client
}

// HTTPResponse wraps both httptest.ResponseRecorder and http.Response
// to provide a unified interface for tests.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// NewHTTPClient creates a new HTTP client.
// If TEST_SERVER_URL env var is set, it uses that for external server testing.
// Otherwise, it requires an in-process handler.
func NewHTTPClient(handler http.Handler) *HTTPClient {
	return &HTTPClient{
		inProcessHandler: handler,
		baseURL:          os.Getenv("TEST_SERVER_URL"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewExternalHTTPClient creates a client for external server testing only.
// baseURL should be like "http://localhost:3000"
func NewExternalHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsExternal returns true if this client hits an external server
func (c *HTTPClient) IsExternal() bool {
	return c.baseURL != ""
}

// BaseURL returns the base URL for external servers, or empty for in-process
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Request performs an HTTP request
func (c *HTTPClient) Request(method, path string, opts ...RequestOption) *HTTPResponse {
	if c.IsExternal() {
		return c.externalRequest(method, path, opts...)
	}
	return c.inProcessRequest(method, path, opts...)
}

// inProcessRequest handles requests to in-process test server
func (c *HTTPClient) inProcessRequest(method, path string, opts ...RequestOption) *HTTPResponse {
	req := httptest.NewRequest(method, path, nil)

	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	c.inProcessHandler.ServeHTTP(rec, req)

	return &HTTPResponse{
		StatusCode: rec.Code,
		Body:       rec.Body.Bytes(),
		Headers:    rec.Header(),
	}
}

// externalRequest handles requests to external server
func (c *HTTPClient) externalRequest(method, path string, opts ...RequestOption) *HTTPResponse {
	url := c.baseURL + path

	// Collect options on a throwaway request, then copy onto the real one
	tempReq := httptest.NewRequest(method, path, nil)
	for _, opt := range opts {
		opt(tempReq)
	}

	var body io.Reader
	if tempReq.Body != nil {
		bodyBytes, _ := io.ReadAll(tempReq.Body)
		body = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return &HTTPResponse{StatusCode: 0, Body: []byte(err.Error())}
	}
	for k, v := range tempReq.Header {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &HTTPResponse{StatusCode: 0, Body: []byte(err.Error())}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    resp.Header,
	}
}

// GET performs a GET request
func (c *HTTPClient) GET(path string, opts ...RequestOption) *HTTPResponse {
	return c.Request(http.MethodGet, path, opts...)
}

// HEAD performs a HEAD request
func (c *HTTPClient) HEAD(path string, opts ...RequestOption) *HTTPResponse {
	return c.Request(http.MethodHead, path, opts...)
}

// JSON unmarshals the response body into v
func (r *HTTPResponse) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// String returns the response body as a string
func (r *HTTPResponse) String() string {
	return string(r.Body)
}

// ============================================================================
// API Helper Methods
// ============================================================================

// ListDocuments fetches the document list from the JSON API
func (c *HTTPClient) ListDocuments() (*docs.DocumentList, error) {
	resp := c.GET("/api/docs")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list documents: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var result docs.DocumentList
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("failed to parse documents response: %w", err)
	}
	return &result, nil
}

// GetDocument fetches one document from the JSON API
func (c *HTTPClient) GetDocument(slug string) (*HTTPResponse, error) {
	return c.GET("/api/docs/" + slug), nil
}

// GetCategories fetches the category list from the JSON API
func (c *HTTPClient) GetCategories() (*docs.CategoriesResponse, error) {
	resp := c.GET("/api/docs/categories")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list categories: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var result docs.CategoriesResponse
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("failed to parse categories response: %w", err)
	}
	return &result, nil
}

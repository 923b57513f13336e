package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// overrides the per-request timeout of the underlying http client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// sends the admin key as a bearer token on destructive calls
func WithAdminKey(key string) Option {
	return func(c *Client) {
		c.adminKey = key
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) IngestText(ctx context.Context, text string) (*IngestResponse, error) {
	var out IngestResponse
	if err := c.doJSON(ctx, http.MethodPost, "/ingest_text", ingestTextRequest{Text: text}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) IngestURL(ctx context.Context, url string) (*IngestResponse, error) {
	var out IngestResponse
	if err := c.doJSON(ctx, http.MethodPost, "/ingest_url", ingestURLRequest{URL: url}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// uploads a PDF as multipart field "file"
func (c *Client) IngestPDF(ctx context.Context, filename string, r io.Reader) (*IngestResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to copy pdf: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingest_pdf", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out IngestResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// k <= 0 lets the server use its default
func (c *Client) Query(ctx context.Context, query string, k int) (*QueryResponse, error) {
	var out QueryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/query", queryRequest{Query: query, K: max(k, 0)}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Ask(ctx context.Context, query string) (*AskResponse, error) {
	var out AskResponse
	if err := c.doJSON(ctx, http.MethodPost, "/ask", askRequest{Query: query}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.doJSON(ctx, http.MethodGet, "/stats", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// empties the server's store
func (c *Client) Reset(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/store", nil, nil)
}

// returns nil when the server answers its health check
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.adminKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

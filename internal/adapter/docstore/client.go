// Package docstore talks to the content-addressed document store holding
// encrypted certificate blobs. Pointers are opaque to the engine.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/JingsthonC/xertiq/config"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.DocumentStore against the store's REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a document store client.
func NewClient(cfg config.DocStoreConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type storeResponse struct {
	Pointer string `json:"pointer"`
}

// Store uploads an encrypted blob and returns its pointer.
func (c *Client) Store(ctx context.Context, blob []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/blobs", bytes.NewReader(blob))
	if err != nil {
		return "", fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("document store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("document store upload: status %d", resp.StatusCode)
	}

	var out storeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode store response: %w", err)
	}
	if out.Pointer == "" {
		return "", fmt.Errorf("document store returned empty pointer")
	}
	return out.Pointer, nil
}

// Fetch downloads the blob behind an opaque pointer.
func (c *Client) Fetch(ctx context.Context, pointer string) ([]byte, error) {
	u := c.baseURL + "/v1/blobs?pointer=" + url.QueryEscape(pointer)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("document store: pointer %q not found", pointer)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document store fetch: status %d", resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return blob, nil
}

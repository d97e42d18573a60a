// Package credits talks to the billing service that gates chargeable
// operations.
package credits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.CreditAuthorizer against the billing REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a credit authorizer client.
func NewClient(cfg config.CreditsConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type authorizeRequest struct {
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
}

type authorizeResponse struct {
	Authorized bool `json:"authorized"`
}

// Authorize asks the billing service whether the operation may proceed.
// Denial is a boolean, not an error; an error means the service itself was
// unreachable.
func (c *Client) Authorize(ctx context.Context, op domain.OperationKind, quantity int) (bool, error) {
	body, err := json.Marshal(authorizeRequest{Operation: string(op), Quantity: quantity})
	if err != nil {
		return false, fmt.Errorf("marshal authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/authorize", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("credit service request: %w", err)
	}
	defer resp.Body.Close()

	// 402 is the service's explicit denial.
	if resp.StatusCode == http.StatusPaymentRequired {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("credit service: status %d", resp.StatusCode)
	}

	var out authorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode authorize response: %w", err)
	}
	return out.Authorized, nil
}

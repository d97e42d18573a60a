// Package ledger talks to the external ledger gateway over HTTP. The
// gateway owns the chain-side signing identity; this client only submits
// roots and reads confirmation state.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// serviceTokenTTL bounds how long a minted gateway token stays valid. One
// token per request keeps revocation trivial.
const serviceTokenTTL = 2 * time.Minute

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.Ledger against the gateway's REST API.
type Client struct {
	baseURL    string
	secret     []byte
	issuer     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger gateway client.
func NewClient(cfg config.LedgerConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		secret:     []byte(cfg.ServiceTokenSecret),
		issuer:     cfg.ServiceTokenIssuer,
		httpClient: httpClient,
		log:        log,
	}
}

type submitRequest struct {
	MerkleRoot string `json:"merkle_root"`
}

type submitResponse struct {
	TxRef string `json:"tx_ref"`
}

type confirmResponse struct {
	TxRef  string `json:"tx_ref"`
	Status string `json:"status"` // pending, confirmed, failed
}

type rootResponse struct {
	TxRef      string `json:"tx_ref"`
	MerkleRoot string `json:"merkle_root"`
}

// Submit anchors a hex merkle root, returning the transaction reference.
func (c *Client) Submit(ctx context.Context, rootHex string) (string, error) {
	body, err := json.Marshal(submitRequest{MerkleRoot: rootHex})
	if err != nil {
		return "", fmt.Errorf("marshal submit request: %w", err)
	}

	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/anchors", bytes.NewReader(body), &resp); err != nil {
		return "", err
	}
	if resp.TxRef == "" {
		return "", fmt.Errorf("ledger gateway returned empty tx_ref")
	}
	return resp.TxRef, nil
}

// Confirm polls the confirmation state of a submitted transaction.
func (c *Client) Confirm(ctx context.Context, txRef string) (ports.LedgerTxStatus, error) {
	var resp confirmResponse
	if err := c.do(ctx, http.MethodGet, "/v1/anchors/"+txRef, nil, &resp); err != nil {
		return "", err
	}
	switch resp.Status {
	case "pending":
		return ports.LedgerTxPending, nil
	case "confirmed":
		return ports.LedgerTxConfirmed, nil
	case "failed":
		return ports.LedgerTxFailed, nil
	default:
		return "", fmt.Errorf("ledger gateway returned unknown status %q", resp.Status)
	}
}

// FetchAnchoredRoot reads the anchored root back over the public read path.
func (c *Client) FetchAnchoredRoot(ctx context.Context, txRef string) (string, error) {
	var resp rootResponse
	if err := c.do(ctx, http.MethodGet, "/v1/anchors/"+txRef+"/root", nil, &resp); err != nil {
		return "", err
	}
	if resp.MerkleRoot == "" {
		return "", fmt.Errorf("ledger gateway returned empty root for %s", txRef)
	}
	return resp.MerkleRoot, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	token, err := c.mintServiceToken()
	if err != nil {
		return fmt.Errorf("mint service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("ledger gateway returned error")
		return fmt.Errorf("ledger gateway %s %s: status %d: %s", method, path, resp.StatusCode, payload)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode ledger response: %w", err)
	}
	return nil
}

// mintServiceToken creates a short-lived HS256 bearer token the gateway
// authenticates this service with.
func (c *Client) mintServiceToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": c.issuer,
		"iat": now.Unix(),
		"exp": now.Add(serviceTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

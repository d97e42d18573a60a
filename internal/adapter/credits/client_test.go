package credits

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.CreditsConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}, nil, zerolog.Nop())
}

func TestClient_Authorize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/authorize", r.URL.Path)

		var req struct {
			Operation string `json:"operation"`
			Quantity  int    `json:"quantity"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, string(domain.OpLedgerAnchor), req.Operation)
		assert.Equal(t, 1, req.Quantity)

		json.NewEncoder(w).Encode(map[string]bool{"authorized": true})
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).Authorize(context.Background(), domain.OpLedgerAnchor, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_Authorize_Denied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"authorized": false})
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).Authorize(context.Background(), domain.OpStorageUpload, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_Authorize_PaymentRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).Authorize(context.Background(), domain.OpLedgerAnchor, 1)
	require.NoError(t, err)
	assert.False(t, ok, "402 is a denial, not an error")
}

func TestClient_Authorize_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Authorize(context.Background(), domain.OpLedgerAnchor, 1)
	require.Error(t, err)
}

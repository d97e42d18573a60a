package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "d4735e3a265e16eee03f59718b9b5d03019c07d8b6c51f90da3a666eec13ab35"

func newTestClient(baseURL string) *Client {
	return NewClient(config.LedgerConfig{
		BaseURL:            baseURL,
		ServiceTokenSecret: "test-secret",
		ServiceTokenIssuer: "xertiq-anchor-engine",
		RequestTimeout:     5 * time.Second,
	}, nil, zerolog.Nop())
}

func TestClient_Submit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/anchors", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// The bearer token must be a valid HS256 JWT from our issuer.
		auth := r.Header.Get("Authorization")
		require.True(t, strings.HasPrefix(auth, "Bearer "))
		token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		iss, err := token.Claims.GetIssuer()
		require.NoError(t, err)
		assert.Equal(t, "xertiq-anchor-engine", iss)

		var req struct {
			MerkleRoot string `json:"merkle_root"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testRoot, req.MerkleRoot)

		json.NewEncoder(w).Encode(map[string]string{"tx_ref": "tx-abc123"})
	}))
	defer srv.Close()

	txRef, err := newTestClient(srv.URL).Submit(context.Background(), testRoot)
	require.NoError(t, err)
	assert.Equal(t, "tx-abc123", txRef)
}

func TestClient_Submit_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "signer unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), testRoot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Confirm(t *testing.T) {
	tests := []struct {
		gateway string
		want    ports.LedgerTxStatus
	}{
		{"pending", ports.LedgerTxPending},
		{"confirmed", ports.LedgerTxConfirmed},
		{"failed", ports.LedgerTxFailed},
	}

	for _, tt := range tests {
		t.Run(tt.gateway, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/anchors/tx-abc123", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]string{"tx_ref": "tx-abc123", "status": tt.gateway})
			}))
			defer srv.Close()

			status, err := newTestClient(srv.URL).Confirm(context.Background(), "tx-abc123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestClient_Confirm_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"tx_ref": "tx-abc123", "status": "limbo"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Confirm(context.Background(), "tx-abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestClient_FetchAnchoredRoot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/anchors/tx-abc123/root", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"tx_ref": "tx-abc123", "merkle_root": testRoot})
	}))
	defer srv.Close()

	root, err := newTestClient(srv.URL).FetchAnchoredRoot(context.Background(), "tx-abc123")
	require.NoError(t, err)
	assert.Equal(t, testRoot, root)
}

func TestClient_FetchAnchoredRoot_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"tx_ref": "tx-abc123"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchAnchoredRoot(context.Background(), "tx-abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty root")
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).Submit(ctx, testRoot)
	require.Error(t, err)
}

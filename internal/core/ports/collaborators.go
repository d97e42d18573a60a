package ports

import (
	"context"
	"time"

	"github.com/JingsthonC/xertiq/internal/core/domain"
)

// LedgerTxStatus is the confirmation state reported by the ledger gateway.
type LedgerTxStatus string

const (
	LedgerTxPending   LedgerTxStatus = "pending"
	LedgerTxConfirmed LedgerTxStatus = "confirmed"
	LedgerTxFailed    LedgerTxStatus = "failed"
)

// Ledger is the external append-only ledger collaborator. The gateway owns
// the single shared signing identity; callers must serialize submissions.
type Ledger interface {
	// Submit anchors a hex merkle root, returning the transaction reference.
	Submit(ctx context.Context, rootHex string) (string, error)
	// Confirm polls the confirmation state of a submitted transaction.
	Confirm(ctx context.Context, txRef string) (LedgerTxStatus, error)
	// FetchAnchoredRoot reads the anchored root back over the public read
	// path. Used by verification for ledger-independent confirmation.
	FetchAnchoredRoot(ctx context.Context, txRef string) (string, error)
}

// DocumentStore is the content-addressed store holding encrypted document
// blobs. Pointers are opaque strings; the engine never interprets them.
type DocumentStore interface {
	Store(ctx context.Context, blob []byte) (string, error)
	Fetch(ctx context.Context, pointer string) ([]byte, error)
}

// CreditAuthorizer is the billing collaborator gating chargeable operations.
type CreditAuthorizer interface {
	// Authorize returns false when the operation is denied for lack of
	// credit. An error means the authorizer itself was unreachable.
	Authorize(ctx context.Context, op domain.OperationKind, quantity int) (bool, error)
}

// RootCache caches ledger-observed roots keyed by transaction reference.
// A cached value is an availability optimization only — verification still
// cross-checks the ledger whenever it is reachable.
type RootCache interface {
	// Get returns the cached hex root, or "" when absent.
	Get(ctx context.Context, txRef string) (string, error)
	Set(ctx context.Context, txRef string, rootHex string, ttl time.Duration) error
}

// AnchorLock serializes anchoring per batch across service instances.
type AnchorLock interface {
	// Acquire atomically takes the per-batch lock. Returns false when some
	// other coordinator holds it.
	Acquire(ctx context.Context, batchID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, batchID string) error
}

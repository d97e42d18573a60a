package ports

import (
	"context"

	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/google/uuid"
)

// IdentityHasher derives the non-reversible identity fingerprint from PII
// fields. Pure and deterministic: identical normalized inputs always yield
// identical output. Intentionally unsalted so the same identity maps to the
// same fingerprint across batches (documented linkability trade-off).
type IdentityHasher interface {
	Fingerprint(record domain.IdentityRecord) (string, error)
}

// LeafBuilder combines a fingerprint with a document pointer into a leaf
// hash. The pre-image format is part of the external verification protocol.
type LeafBuilder interface {
	Leaf(fingerprint string, pointer string) (string, error)
}

// BatchPipeline orchestrates the end-to-end flow: ingest, hash, tree build,
// persist, anchor, progress emission.
type BatchPipeline interface {
	// Submit validates the request, creates the batch record and starts
	// asynchronous processing. The returned batch is in status pending.
	Submit(ctx context.Context, req CreateBatchRequest) (*domain.Batch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	ListBatches(ctx context.Context, params BatchListParams) ([]domain.Batch, int64, error)
}

// CreateBatchRequest holds validated input for batch creation.
type CreateBatchRequest struct {
	Name      string
	Documents []domain.DocumentInput
}

// AnchorCoordinator manages ledger anchoring. Submissions from all batches
// funnel through one queue because the ledger signing identity is shared.
type AnchorCoordinator interface {
	// EnqueueAnchor queues the batch for anchoring. Returns
	// ErrAnchorInProgress / ErrInvalidStatusTransition when the batch
	// cannot be anchored from its current status.
	EnqueueAnchor(ctx context.Context, batchID uuid.UUID) error
	// RetryAnchor re-queues a batch in status anchor_failed.
	RetryAnchor(ctx context.Context, batchID uuid.UUID) error
}

// VerificationEngine replays stored proofs against ledger-anchored roots.
type VerificationEngine interface {
	// VerifyDocument verifies the stored leaf inputs for documentID.
	VerifyDocument(ctx context.Context, documentID string) (*domain.VerificationReport, error)
	// VerifyClaim verifies caller-supplied inputs against the stored proof,
	// so a third party can check what they were handed out-of-band.
	VerifyClaim(ctx context.Context, req VerifyClaimRequest) (*domain.VerificationReport, error)
}

// VerifyClaimRequest carries claimed leaf inputs. Either Identity or
// Fingerprint must be set; Pointer is required.
type VerifyClaimRequest struct {
	DocumentID  string
	Identity    *domain.IdentityRecord
	Fingerprint string
	Pointer     string
}

// ProgressBroker fans stage-completion events out to streaming consumers.
type ProgressBroker interface {
	Publish(event domain.ProgressEvent)
	// Subscribe returns a channel of events for one batch plus a cancel
	// function. The channel closes after a terminal event or cancel.
	Subscribe(batchID uuid.UUID) (<-chan domain.ProgressEvent, func())
}

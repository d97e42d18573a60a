package ports

import (
	"context"
	"time"

	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BatchRepository defines persistence operations for batches.
// Status changes are compare-and-set against the expected current status so
// the lifecycle state machine holds even with concurrent coordinators.
type BatchRepository interface {
	Create(ctx context.Context, tx pgx.Tx, batch *domain.Batch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	// TransitionStatus moves id from `from` to `to`. Returns false when the
	// batch was not in `from` (someone else moved it first).
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BatchStatus) (bool, error)
	// MarkAnchored records the confirmed ledger linkage. Fails unless the
	// batch is in anchoring_in_progress.
	MarkAnchored(ctx context.Context, id uuid.UUID, ledgerTxRef string, anchoredAt time.Time) error
	// MarkAnchorFailed records the failure reason for operator remediation.
	MarkAnchorFailed(ctx context.Context, id uuid.UUID, reason string) error
	// SetMerkleRoot records the computed root once pipeline processing
	// finishes, in the same transaction that persists the documents.
	SetMerkleRoot(ctx context.Context, tx pgx.Tx, id uuid.UUID, rootHex string) error
	List(ctx context.Context, params BatchListParams) ([]domain.Batch, int64, error)
}

// BatchListParams holds filter + pagination for listing batches.
type BatchListParams struct {
	Status   *domain.BatchStatus
	Page     int
	PageSize int
}

// DocumentRepository defines persistence operations for batch documents.
// Documents are written once, alongside their batch, and never mutated.
type DocumentRepository interface {
	CreateAll(ctx context.Context, tx pgx.Tx, docs []domain.BatchDocument) error
	GetByDocumentID(ctx context.Context, documentID string) (*domain.BatchDocument, error)
	ListByBatchID(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDocument, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

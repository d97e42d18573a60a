package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BatchRepo implements ports.BatchRepository.
type BatchRepo struct {
	pool Pool
}

// NewBatchRepo creates a new BatchRepo.
func NewBatchRepo(pool Pool) *BatchRepo {
	return &BatchRepo{pool: pool}
}

const batchColumns = `id, name, merkle_root, ledger_tx_ref, status, leaf_count, failure_reason, created_at, anchored_at`

// Create inserts a new batch within a database transaction.
func (r *BatchRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.Batch) error {
	query := `INSERT INTO batches (id, name, merkle_root, ledger_tx_ref, status, leaf_count, failure_reason, created_at, anchored_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		b.ID, b.Name, b.MerkleRoot, b.LedgerTxRef,
		b.Status, b.LeafCount, b.FailureReason,
		b.CreatedAt, b.AnchoredAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID fetches a batch by UUID.
func (r *BatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	query := fmt.Sprintf(`SELECT %s FROM batches WHERE id = $1`, batchColumns)
	return r.scanBatch(r.pool.QueryRow(ctx, query, id))
}

// TransitionStatus compare-and-sets the batch status. Returns false when
// the batch was not in the expected `from` status.
func (r *BatchRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BatchStatus) (bool, error) {
	query := `UPDATE batches SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("transition batch status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAnchored records a confirmed anchoring. Guarded on
// anchoring_in_progress so a stale worker cannot overwrite a fresh run.
func (r *BatchRepo) MarkAnchored(ctx context.Context, id uuid.UUID, ledgerTxRef string, anchoredAt time.Time) error {
	query := `UPDATE batches SET status = $1, ledger_tx_ref = $2, anchored_at = $3, failure_reason = NULL
		WHERE id = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query,
		domain.BatchStatusAnchored, ledgerTxRef, anchoredAt,
		id, domain.BatchStatusAnchoring,
	)
	if err != nil {
		return fmt.Errorf("mark batch anchored: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("batch %s not in %s", id, domain.BatchStatusAnchoring)
	}
	return nil
}

// MarkAnchorFailed records a failed run with its reason.
func (r *BatchRepo) MarkAnchorFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE batches SET status = $1, failure_reason = $2 WHERE id = $3 AND status != $4`

	tag, err := r.pool.Exec(ctx, query,
		domain.BatchStatusAnchorFailed, reason, id, domain.BatchStatusAnchored,
	)
	if err != nil {
		return fmt.Errorf("mark batch anchor failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("batch not found or already anchored: %s", id)
	}
	return nil
}

// SetMerkleRoot records the computed root within a database transaction.
func (r *BatchRepo) SetMerkleRoot(ctx context.Context, tx pgx.Tx, id uuid.UUID, rootHex string) error {
	query := `UPDATE batches SET merkle_root = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, rootHex, id)
	if err != nil {
		return fmt.Errorf("set merkle root: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("batch not found: %s", id)
	}
	return nil
}

// List fetches batches with filtering and pagination.
func (r *BatchRepo) List(ctx context.Context, params ports.BatchListParams) ([]domain.Batch, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM batches %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count batches: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM batches %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		batchColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.Batch
	for rows.Next() {
		b := domain.Batch{}
		err := rows.Scan(
			&b.ID, &b.Name, &b.MerkleRoot, &b.LedgerTxRef,
			&b.Status, &b.LeafCount, &b.FailureReason,
			&b.CreatedAt, &b.AnchoredAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan batch row: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate batch rows: %w", err)
	}
	return batches, total, nil
}

// scanBatch is a helper to scan a single row into a Batch.
func (r *BatchRepo) scanBatch(row pgx.Row) (*domain.Batch, error) {
	b := domain.Batch{}
	err := row.Scan(
		&b.ID, &b.Name, &b.MerkleRoot, &b.LedgerTxRef,
		&b.Status, &b.LeafCount, &b.FailureReason,
		&b.CreatedAt, &b.AnchoredAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan batch: %w", err)
	}
	return &b, nil
}

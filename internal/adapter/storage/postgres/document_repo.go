package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/pkg/merkle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DocumentRepo implements ports.DocumentRepository. Proofs are stored as
// JSONB so the persisted shape matches what verification responses emit.
type DocumentRepo struct {
	pool Pool
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(pool Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

const documentColumns = `id, batch_id, document_id, fingerprint, document_pointer, leaf_hash, leaf_index, proof, created_at`

// CreateAll inserts all documents of a batch within a database transaction.
func (r *DocumentRepo) CreateAll(ctx context.Context, tx pgx.Tx, docs []domain.BatchDocument) error {
	query := `INSERT INTO batch_documents (id, batch_id, document_id, fingerprint, document_pointer, leaf_hash, leaf_index, proof, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for i := range docs {
		proofJSON, err := json.Marshal(docs[i].Proof)
		if err != nil {
			return fmt.Errorf("marshal proof for %s: %w", docs[i].DocumentID, err)
		}
		_, err = tx.Exec(ctx, query,
			docs[i].ID, docs[i].BatchID, docs[i].DocumentID,
			docs[i].Fingerprint, docs[i].DocumentPointer,
			docs[i].LeafHash, docs[i].LeafIndex,
			proofJSON, docs[i].CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert document %s: %w", docs[i].DocumentID, err)
		}
	}
	return nil
}

// GetByDocumentID fetches one document by its external identifier.
func (r *DocumentRepo) GetByDocumentID(ctx context.Context, documentID string) (*domain.BatchDocument, error) {
	query := fmt.Sprintf(`SELECT %s FROM batch_documents WHERE document_id = $1`, documentColumns)
	return r.scanDocument(r.pool.QueryRow(ctx, query, documentID))
}

// ListByBatchID fetches all documents of a batch in leaf order.
func (r *DocumentRepo) ListByBatchID(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDocument, error) {
	query := fmt.Sprintf(`SELECT %s FROM batch_documents WHERE batch_id = $1 ORDER BY leaf_index`, documentColumns)

	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.BatchDocument
	for rows.Next() {
		d := domain.BatchDocument{}
		var proofJSON []byte
		err := rows.Scan(
			&d.ID, &d.BatchID, &d.DocumentID,
			&d.Fingerprint, &d.DocumentPointer,
			&d.LeafHash, &d.LeafIndex,
			&proofJSON, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		if err := json.Unmarshal(proofJSON, &d.Proof); err != nil {
			return nil, fmt.Errorf("unmarshal proof for %s: %w", d.DocumentID, err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document rows: %w", err)
	}
	return docs, nil
}

// scanDocument is a helper to scan a single row into a BatchDocument.
func (r *DocumentRepo) scanDocument(row pgx.Row) (*domain.BatchDocument, error) {
	d := domain.BatchDocument{}
	var proofJSON []byte
	err := row.Scan(
		&d.ID, &d.BatchID, &d.DocumentID,
		&d.Fingerprint, &d.DocumentPointer,
		&d.LeafHash, &d.LeafIndex,
		&proofJSON, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	d.Proof = merkle.Proof{}
	if err := json.Unmarshal(proofJSON, &d.Proof); err != nil {
		return nil, fmt.Errorf("unmarshal proof for %s: %w", d.DocumentID, err)
	}
	return &d, nil
}

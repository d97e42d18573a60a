package dto

import (
	"time"

	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/google/uuid"
)

// IdentityRequest carries the PII fields hashed into the identity
// fingerprint. Metadata travels alongside but never enters the hash.
type IdentityRequest struct {
	Email     string            `json:"email" binding:"required,email"`
	Birthdate string            `json:"birthdate" binding:"required"`
	Gender    string            `json:"gender" binding:"required"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// DocumentRequest is one document in a batch submission. Exactly one of
// pointer / encrypted_blob must be provided; the service enforces this.
type DocumentRequest struct {
	DocumentID    string          `json:"document_id" binding:"required,max=128"`
	Identity      IdentityRequest `json:"identity" binding:"required"`
	Pointer       string          `json:"pointer,omitempty"`
	EncryptedBlob []byte          `json:"encrypted_blob,omitempty"`
}

// CreateBatchRequest is the payload for POST /api/v1/batches.
type CreateBatchRequest struct {
	Name      string            `json:"name" binding:"required,max=255"`
	// No required tag: an empty batch is rejected by the pipeline with its
	// own error code rather than a generic binding failure.
	Documents []DocumentRequest `json:"documents" binding:"dive"`
}

// VerifyClaimRequest is the payload for POST /api/v1/verify. Callers
// supply either the raw identity or a precomputed fingerprint.
type VerifyClaimRequest struct {
	DocumentID  string           `json:"document_id" binding:"required"`
	Identity    *IdentityRequest `json:"identity,omitempty"`
	Fingerprint string           `json:"fingerprint,omitempty"`
	Pointer     string           `json:"pointer" binding:"required"`
}

// BatchResponse is the public representation of a batch.
type BatchResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	MerkleRoot    *string    `json:"merkle_root,omitempty"`
	LedgerTxRef   *string    `json:"ledger_tx_ref,omitempty"`
	LeafCount     int        `json:"leaf_count"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	AnchoredAt    *time.Time `json:"anchored_at,omitempty"`
}

// BatchListResponse wraps a page of batches.
type BatchListResponse struct {
	Batches  []BatchResponse `json:"batches"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ToBatchResponse maps a domain batch to its API shape.
func ToBatchResponse(b *domain.Batch) BatchResponse {
	return BatchResponse{
		ID:            b.ID,
		Name:          b.Name,
		Status:        string(b.Status),
		MerkleRoot:    b.MerkleRoot,
		LedgerTxRef:   b.LedgerTxRef,
		LeafCount:     b.LeafCount,
		FailureReason: b.FailureReason,
		CreatedAt:     b.CreatedAt,
		AnchoredAt:    b.AnchoredAt,
	}
}

// ToIdentityRecord maps the API identity shape to the domain record.
func ToIdentityRecord(r IdentityRequest) domain.IdentityRecord {
	return domain.IdentityRecord{
		Email:     r.Email,
		Birthdate: r.Birthdate,
		Gender:    r.Gender,
		Metadata:  r.Metadata,
	}
}

// ToDocumentInputs maps API documents to domain pipeline inputs.
func ToDocumentInputs(docs []DocumentRequest) []domain.DocumentInput {
	inputs := make([]domain.DocumentInput, len(docs))
	for i, d := range docs {
		inputs[i] = domain.DocumentInput{
			DocumentID:    d.DocumentID,
			Identity:      ToIdentityRecord(d.Identity),
			Pointer:       d.Pointer,
			EncryptedBlob: d.EncryptedBlob,
		}
	}
	return inputs
}

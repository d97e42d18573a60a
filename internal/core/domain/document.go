package domain

import (
	"time"

	"github.com/JingsthonC/xertiq/pkg/merkle"

	"github.com/google/uuid"
)

// BatchDocument binds one certificate to its position inside an anchored
// batch. Created alongside the batch, persisted after tree build, never
// mutated after — the proof path depends on the leaf index staying fixed.
type BatchDocument struct {
	ID              uuid.UUID    `json:"id"`
	BatchID         uuid.UUID    `json:"batch_id"`
	DocumentID      string       `json:"document_id"` // user-facing identifier
	Fingerprint     string       `json:"fingerprint"` // hex identity fingerprint
	DocumentPointer string       `json:"document_pointer"`
	LeafHash        string       `json:"leaf_hash"` // hex
	LeafIndex       int          `json:"leaf_index"`
	Proof           merkle.Proof `json:"proof"`
	CreatedAt       time.Time    `json:"created_at"`
}

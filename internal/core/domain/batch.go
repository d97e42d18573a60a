package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus represents the anchoring lifecycle state of a batch.
type BatchStatus string

const (
	BatchStatusPending      BatchStatus = "pending"
	BatchStatusAnchoring    BatchStatus = "anchoring_in_progress"
	BatchStatusAnchored     BatchStatus = "anchored"
	BatchStatusAnchorFailed BatchStatus = "anchor_failed"
)

// validTransitions is the batch state machine. anchored is terminal;
// anchor_failed may re-enter anchoring_in_progress on manual retry.
var validTransitions = map[BatchStatus][]BatchStatus{
	// pending may fail directly when pipeline processing aborts before
	// anchoring ever starts.
	BatchStatusPending:      {BatchStatusAnchoring, BatchStatusAnchorFailed},
	BatchStatusAnchoring:    {BatchStatusAnchored, BatchStatusAnchorFailed},
	BatchStatusAnchorFailed: {BatchStatusAnchoring},
	BatchStatusAnchored:     {},
}

// CanTransitionTo reports whether the state machine permits moving to next.
func (s BatchStatus) CanTransitionTo(next BatchStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Batch is one anchored commitment over an ordered set of document leaves.
// Once anchored, its leaf order, root and every proof path are immutable;
// corrections require a new batch.
type Batch struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	MerkleRoot    *string     `json:"merkle_root,omitempty"` // hex, fixed after tree build
	LedgerTxRef   *string     `json:"ledger_tx_ref,omitempty"`
	Status        BatchStatus `json:"status"`
	LeafCount     int         `json:"leaf_count"`
	FailureReason *string     `json:"failure_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	AnchoredAt    *time.Time  `json:"anchored_at,omitempty"`
}

// IsAnchored returns true once the ledger linkage is confirmed.
func (b *Batch) IsAnchored() bool {
	return b.Status == BatchStatusAnchored
}

// Anchorable returns true if an anchoring attempt may be started.
func (b *Batch) Anchorable() bool {
	return b.Status.CanTransitionTo(BatchStatusAnchoring)
}

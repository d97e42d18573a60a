package domain

import (
	"time"

	"github.com/JingsthonC/xertiq/pkg/merkle"

	"github.com/google/uuid"
)

// Verdict is the outcome of verifying one document against its anchored
// root. Callers always receive one of these four values — tampering and
// system failure are never confusable.
type Verdict string

const (
	// VerdictValid: the recomputed root matches the ledger-confirmed root.
	VerdictValid Verdict = "valid"
	// VerdictTampered: the replayed proof does not reach the anchored root.
	// A legitimate verification outcome, not an error.
	VerdictTampered Verdict = "tampered"
	// VerdictNotFound: no such document or batch.
	VerdictNotFound Verdict = "not_found"
	// VerdictNotAnchored: the batch exists but anchoring is incomplete —
	// verification is indeterminate, not failed.
	VerdictNotAnchored Verdict = "not_anchored"
)

// VerificationReport carries the verdict plus everything needed to render a
// human-readable proof: the replayed path, both roots and the ledger
// reference the root was fetched from.
type VerificationReport struct {
	Verdict      Verdict      `json:"verdict"`
	DocumentID   string       `json:"document_id"`
	BatchID      *uuid.UUID   `json:"batch_id,omitempty"`
	LeafHash     string       `json:"leaf_hash,omitempty"` // hex, recomputed
	Proof        merkle.Proof `json:"proof,omitempty"`
	ComputedRoot string       `json:"computed_root,omitempty"` // hex, from replay
	AnchoredRoot string       `json:"anchored_root,omitempty"` // hex, ledger-observed
	LedgerTxRef  string       `json:"ledger_tx_ref,omitempty"`
	CheckedAt    time.Time    `json:"checked_at"`
}

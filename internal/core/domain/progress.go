package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage identifies a completed pipeline step in a batch progress stream.
type Stage string

const (
	StageRecordsHashed  Stage = "records_hashed"
	StagePointersStored Stage = "pointers_resolved"
	StageLeavesBuilt    Stage = "leaves_built"
	StageTreeBuilt      Stage = "tree_built"
	StagePersisted      Stage = "persisted"
	StageAnchoring      Stage = "anchoring"
	StageCompleted      Stage = "completed"
	StageFailed         Stage = "failed"
)

// IsTerminal reports whether this stage ends the stream for its batch.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageFailed
}

// ProgressEvent is one stage-completion notification. Events for a batch
// form a finite ordered sequence with exactly one terminal event.
type ProgressEvent struct {
	Stage     Stage     `json:"stage"`
	BatchID   uuid.UUID `json:"batch_id"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

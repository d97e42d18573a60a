package domain

// IdentityRecord is the raw PII input for one certificate holder. It is
// ephemeral: records exist only for the duration of batch hashing and are
// never persisted in raw form. The metadata map is carried for downstream
// collaborators (PDF rendering etc.) and is never hashed into the
// fingerprint, so the cryptographic contract stays fixed as extra fields
// evolve.
type IdentityRecord struct {
	Email     string            `json:"email"`
	Birthdate string            `json:"birthdate"` // ISO date, e.g. 1994-03-21
	Gender    string            `json:"gender"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// DocumentInput is one unit of pipeline input: the holder's identity plus
// either an already-stored document pointer or the encrypted blob to store.
type DocumentInput struct {
	DocumentID string         `json:"document_id"`
	Identity   IdentityRecord `json:"identity"`
	// Pointer references an already-stored encrypted document. If empty,
	// EncryptedBlob is uploaded to the document store to obtain one.
	Pointer       string `json:"pointer,omitempty"`
	EncryptedBlob []byte `json:"encrypted_blob,omitempty"`
}

// OperationKind identifies credit-gated operations against the billing
// collaborator.
type OperationKind string

const (
	OpStorageUpload OperationKind = "storage_upload"
	OpLedgerAnchor  OperationKind = "ledger_anchor"
	OpPDFGeneration OperationKind = "pdf_generation"
)

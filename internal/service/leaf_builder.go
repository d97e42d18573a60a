package service

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/JingsthonC/xertiq/pkg/apperror"
)

// fingerprintHexLen is the length of a hex-encoded SHA-256 fingerprint.
const fingerprintHexLen = sha256.Size * 2

// SHA256LeafBuilder implements ports.LeafBuilder.
//
// The leaf pre-image `fingerprint|pointer` binds an identity to the exact
// stored artifact: swapping either component yields a different leaf, which
// is what lets verification distinguish tampering from substitution.
type SHA256LeafBuilder struct{}

// NewSHA256LeafBuilder creates a new SHA256LeafBuilder.
func NewSHA256LeafBuilder() *SHA256LeafBuilder {
	return &SHA256LeafBuilder{}
}

// Leaf derives the hex-encoded leaf hash for a fingerprint/pointer pair.
func (b *SHA256LeafBuilder) Leaf(fingerprint string, pointer string) (string, error) {
	if len(fingerprint) != fingerprintHexLen {
		return "", apperror.ErrInvalidRecord("fingerprint must be a hex sha256 digest")
	}
	if _, err := hex.DecodeString(fingerprint); err != nil {
		return "", apperror.ErrInvalidRecord("fingerprint must be a hex sha256 digest")
	}
	if pointer == "" {
		return "", apperror.ErrInvalidRecord("document pointer is required")
	}

	sum := sha256.Sum256([]byte(fingerprint + "|" + pointer))
	return hex.EncodeToString(sum[:]), nil
}

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/pkg/apperror"
)

// birthdateLayout is the canonical date form used in fingerprint pre-images.
const birthdateLayout = "2006-01-02"

// SHA256IdentityHasher implements ports.IdentityHasher.
//
// The pre-image is `email|birthdate|gender` after normalization: email and
// gender lowercased and trimmed, birthdate reduced to its date component.
// The fingerprint is deliberately unsalted: the same identity must produce
// the same fingerprint across batches so anchored proofs remain verifiable
// without sharing the raw PII. Metadata fields never enter the pre-image.
type SHA256IdentityHasher struct{}

// NewSHA256IdentityHasher creates a new SHA256IdentityHasher.
func NewSHA256IdentityHasher() *SHA256IdentityHasher {
	return &SHA256IdentityHasher{}
}

// Fingerprint derives the hex-encoded identity fingerprint.
func (h *SHA256IdentityHasher) Fingerprint(record domain.IdentityRecord) (string, error) {
	email := strings.ToLower(strings.TrimSpace(record.Email))
	if email == "" {
		return "", apperror.ErrInvalidRecord("email is required")
	}

	birthdate, err := normalizeBirthdate(record.Birthdate)
	if err != nil {
		return "", err
	}

	gender := strings.ToLower(strings.TrimSpace(record.Gender))
	if gender == "" {
		return "", apperror.ErrInvalidRecord("gender is required")
	}

	sum := sha256.Sum256([]byte(email + "|" + birthdate + "|" + gender))
	return hex.EncodeToString(sum[:]), nil
}

// normalizeBirthdate accepts either the canonical date form or a full
// RFC 3339 timestamp and reduces both to YYYY-MM-DD.
func normalizeBirthdate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperror.ErrInvalidRecord("birthdate is required")
	}
	if t, err := time.Parse(birthdateLayout, raw); err == nil {
		return t.Format(birthdateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(birthdateLayout), nil
	}
	return "", apperror.ErrInvalidRecord("birthdate must be YYYY-MM-DD or RFC 3339")
}

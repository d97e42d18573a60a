package merkle

import (
	"encoding/hex"
	"fmt"
)

// Side records which side of the concatenation a proof sibling occupies.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ProofStep is one (sibling hash, side) pair on the path from a leaf to the
// root. The JSON shape is persisted per document and must stay stable.
type ProofStep struct {
	Hash string `json:"hash"`
	Side Side   `json:"side"`
}

// Proof is the ordered sibling sequence proving one leaf's membership under
// a root, leaf level first.
type Proof []ProofStep

// ReplayRoot reconstructs the hex root implied by a leaf and its proof. A
// structurally malformed proof (bad hex, wrong hash length, unknown side)
// is an error — callers must be able to tell tampering from broken input.
func ReplayRoot(leafHex string, proof Proof) (string, error) {
	cur, err := hex.DecodeString(leafHex)
	if err != nil {
		return "", fmt.Errorf("merkle: leaf is not valid hex: %w", err)
	}
	if len(cur) != HashSize {
		return "", fmt.Errorf("merkle: leaf has length %d, want %d", len(cur), HashSize)
	}

	for i, step := range proof {
		sib, err := hex.DecodeString(step.Hash)
		if err != nil {
			return "", fmt.Errorf("merkle: proof step %d is not valid hex: %w", i, err)
		}
		if len(sib) != HashSize {
			return "", fmt.Errorf("merkle: proof step %d has length %d, want %d", i, len(sib), HashSize)
		}
		switch step.Side {
		case SideLeft:
			cur = combine(sib, cur)
		case SideRight:
			cur = combine(cur, sib)
		default:
			return "", fmt.Errorf("merkle: proof step %d has unknown side %q", i, step.Side)
		}
	}

	return hex.EncodeToString(cur), nil
}

// VerifyProof replays proof against a candidate hex leaf hash and reports
// whether the reconstructed root equals rootHex.
func VerifyProof(leafHex string, proof Proof, rootHex string) (bool, error) {
	got, err := ReplayRoot(leafHex, proof)
	if err != nil {
		return false, err
	}
	return got == rootHex, nil
}

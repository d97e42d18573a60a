// Package merkle implements the binary hash tree used to commit a batch of
// certificate leaves to a single root. The combination rules here are part of
// the external verification protocol: any third party replaying a proof must
// reproduce them byte-for-byte.
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// HashSize is the size in bytes of every node hash.
const HashSize = sha256.Size

var (
	// ErrNoLeaves is returned when a tree is built from zero leaves.
	ErrNoLeaves = errors.New("merkle: tree requires at least one leaf")
	// ErrIndexOutOfRange is returned when a proof is requested for a leaf
	// index the tree does not contain.
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)

// Tree is a binary hash tree stored as a level/index arena: levels[0] holds
// the leaves, each subsequent level the pairwise parents, and the top level a
// single root. Nodes are owned exclusively by the tree; nothing is shared.
//
// Combination rules, fixed for the lifetime of every anchored batch:
//   - parent = SHA-256(left || right), order never swapped
//   - a level with an odd node count duplicates its last node as its own
//     sibling (duplicate-last policy)
//   - a single-leaf tree has root == leaf
type Tree struct {
	levels [][][]byte
}

// New builds a tree bottom-up from hex-encoded leaf hashes, preserving input
// order. Leaf order is fixed at this point: proof paths depend on position.
func New(leafHexes []string) (*Tree, error) {
	if len(leafHexes) == 0 {
		return nil, ErrNoLeaves
	}

	leaves := make([][]byte, 0, len(leafHexes))
	for i, lh := range leafHexes {
		b, err := hex.DecodeString(lh)
		if err != nil {
			return nil, fmt.Errorf("merkle: leaf %d is not valid hex: %w", i, err)
		}
		if len(b) != HashSize {
			return nil, fmt.Errorf("merkle: leaf %d has length %d, want %d", i, len(b), HashSize)
		}
		leaves = append(leaves, b)
	}

	t := &Tree{levels: [][][]byte{leaves}}
	for len(t.topLevel()) > 1 {
		t.levels = append(t.levels, combineLevel(t.topLevel()))
	}
	return t, nil
}

// Root returns the hex-encoded root hash.
func (t *Tree) Root() string {
	return hex.EncodeToString(t.topLevel()[0])
}

// LeafCount returns the number of leaves the tree was built from.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Depth returns the number of levels above the leaves.
func (t *Tree) Depth() int {
	return len(t.levels) - 1
}

// Proof derives the inclusion proof for the leaf at index i: the ordered
// sibling hashes from the leaf level up to (but excluding) the root, each
// tagged with the side the sibling sits on.
func (t *Tree) Proof(i int) (Proof, error) {
	if i < 0 || i >= t.LeafCount() {
		return nil, ErrIndexOutOfRange
	}

	proof := make(Proof, 0, t.Depth())
	idx := i
	for _, level := range t.levels[:len(t.levels)-1] {
		sibIdx := idx ^ 1
		side := SideRight
		if idx%2 == 1 {
			side = SideLeft
		}
		if sibIdx >= len(level) {
			// Odd tail: the node was combined with a copy of itself.
			sibIdx = idx
			side = SideRight
		}
		proof = append(proof, ProofStep{
			Hash: hex.EncodeToString(level[sibIdx]),
			Side: side,
		})
		idx /= 2
	}
	return proof, nil
}

func (t *Tree) topLevel() [][]byte {
	return t.levels[len(t.levels)-1]
}

// combineLevel produces the parent level from an ordered child level.
func combineLevel(level [][]byte) [][]byte {
	parents := make([][]byte, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		left := level[i]
		right := left
		if i+1 < len(level) {
			right = level[i+1]
		}
		parents = append(parents, combine(left, right))
	}
	return parents
}

// combine hashes an ordered (left, right) pair into their parent.
func combine(left, right []byte) []byte {
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

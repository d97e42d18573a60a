package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLeaves builds n distinct hex leaf hashes.
func testLeaves(n int) []string {
	leaves := make([]string, n)
	for i := 0; i < n; i++ {
		sum := sha256.Sum256([]byte(fmt.Sprintf("leaf-%d", i)))
		leaves[i] = hex.EncodeToString(sum[:])
	}
	return leaves
}

func TestNew_EmptyRejected(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoLeaves)

	_, err = New([]string{})
	assert.ErrorIs(t, err, ErrNoLeaves)
}

func TestNew_InvalidLeaf(t *testing.T) {
	tests := []struct {
		name string
		leaf string
	}{
		{"not hex", "zzzz"},
		{"too short", "abcd"},
		{"too long", testLeaves(1)[0] + "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]string{tt.leaf})
			assert.Error(t, err)
		})
	}
}

func TestSingleLeaf_RootEqualsLeaf(t *testing.T) {
	leaves := testLeaves(1)
	tree, err := New(leaves)
	require.NoError(t, err)

	assert.Equal(t, leaves[0], tree.Root())
	assert.Equal(t, 0, tree.Depth())

	proof, err := tree.Proof(0)
	require.NoError(t, err)
	assert.Empty(t, proof, "single-leaf proof is the empty path")

	ok, err := VerifyProof(leaves[0], proof, tree.Root())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTwoLeaves_RootIsOrderedPair(t *testing.T) {
	leaves := testLeaves(2)
	tree, err := New(leaves)
	require.NoError(t, err)

	l0, _ := hex.DecodeString(leaves[0])
	l1, _ := hex.DecodeString(leaves[1])
	h := sha256.New()
	h.Write(l0)
	h.Write(l1)
	expected := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, expected, tree.Root(), "root must be H(left || right), never swapped")
}

func TestOddCount_DuplicateLastPolicy(t *testing.T) {
	// With three leaves the unpaired third is hashed with a copy of itself.
	leaves := testLeaves(3)
	tree, err := New(leaves)
	require.NoError(t, err)

	l0, _ := hex.DecodeString(leaves[0])
	l1, _ := hex.DecodeString(leaves[1])
	l2, _ := hex.DecodeString(leaves[2])

	p01 := combine(l0, l1)
	p22 := combine(l2, l2)
	expected := hex.EncodeToString(combine(p01, p22))

	assert.Equal(t, expected, tree.Root())
}

func TestProof_RoundTripAllIndexes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 13} {
		t.Run(fmt.Sprintf("%d_leaves", n), func(t *testing.T) {
			leaves := testLeaves(n)
			tree, err := New(leaves)
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				proof, err := tree.Proof(i)
				require.NoError(t, err)

				ok, err := VerifyProof(leaves[i], proof, tree.Root())
				require.NoError(t, err)
				assert.True(t, ok, "leaf %d of %d must verify against the root", i, n)
			}
		})
	}
}

func TestProof_IndexOutOfRange(t *testing.T) {
	tree, err := New(testLeaves(3))
	require.NoError(t, err)

	_, err = tree.Proof(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = tree.Proof(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTree_Deterministic(t *testing.T) {
	leaves := testLeaves(5)

	t1, err := New(leaves)
	require.NoError(t, err)
	t2, err := New(leaves)
	require.NoError(t, err)

	assert.Equal(t, t1.Root(), t2.Root(), "same leaf order must always yield the same root")

	p1, err := t1.Proof(2)
	require.NoError(t, err)
	p2, err := t2.Proof(2)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestTree_LeafOrderChangesRoot(t *testing.T) {
	leaves := testLeaves(4)
	t1, err := New(leaves)
	require.NoError(t, err)

	swapped := []string{leaves[1], leaves[0], leaves[2], leaves[3]}
	t2, err := New(swapped)
	require.NoError(t, err)

	assert.NotEqual(t, t1.Root(), t2.Root())
}

func TestVerifyProof_MutatedLeafFails(t *testing.T) {
	leaves := testLeaves(5)
	tree, err := New(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(2)
	require.NoError(t, err)

	// Verify with a different (valid) leaf hash.
	ok, err := VerifyProof(leaves[3], proof, tree.Root())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyProof_MutatedStepFails(t *testing.T) {
	leaves := testLeaves(8)
	tree, err := New(leaves)
	require.NoError(t, err)

	for i := 0; i < tree.Depth(); i++ {
		proof, err := tree.Proof(4)
		require.NoError(t, err)

		other := sha256.Sum256([]byte("mutant"))
		proof[i].Hash = hex.EncodeToString(other[:])

		ok, err := VerifyProof(leaves[4], proof, tree.Root())
		require.NoError(t, err)
		assert.False(t, ok, "mutating proof step %d must break verification", i)
	}
}

func TestVerifyProof_FlippedSideFails(t *testing.T) {
	leaves := testLeaves(4)
	tree, err := New(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(1)
	require.NoError(t, err)
	require.NotEmpty(t, proof)

	if proof[0].Side == SideLeft {
		proof[0].Side = SideRight
	} else {
		proof[0].Side = SideLeft
	}

	ok, err := VerifyProof(leaves[1], proof, tree.Root())
	require.NoError(t, err)
	assert.False(t, ok, "combination order is side-aware; flipping a side must fail")
}

func TestVerifyProof_MalformedIsErrorNotMismatch(t *testing.T) {
	leaves := testLeaves(2)
	tree, err := New(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(Proof) Proof
		leaf   string
	}{
		{"bad leaf hex", func(p Proof) Proof { return p }, "not-hex"},
		{"short leaf", func(p Proof) Proof { return p }, "abcd"},
		{"bad step hex", func(p Proof) Proof {
			p[0].Hash = "xyz"
			return p
		}, leaves[0]},
		{"unknown side", func(p Proof) Proof {
			p[0].Side = "up"
			return p
		}, leaves[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := make(Proof, len(proof))
			copy(p, proof)
			ok, err := VerifyProof(tt.leaf, tt.mutate(p), tree.Root())
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}

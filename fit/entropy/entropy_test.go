package entropy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSeeded_Reproducible verifies equal seeds give equal sequences and
// different seeds diverge.
func TestNewSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	c := NewSeeded(43)

	same := true
	for n := 0; n < 64; n++ {
		av, bv := a.Uint64(), b.Uint64()
		require.Equal(t, av, bv, "same seed must replay the same draws")
		if av != c.Uint64() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge somewhere in 64 draws")
}

// TestUint64n_Bounds verifies draws stay inside [0, n).
func TestUint64n_Bounds(t *testing.T) {
	s := NewSeeded(7)
	for _, n := range []uint64{1, 2, 3, 10, 255, 16384} {
		for iter := 0; iter < 200; iter++ {
			v := Uint64n(s, n)
			require.Less(t, v, n, "draw out of range for n=%d", n)
		}
	}
}

// TestUint64n_ZeroPanics pins the contract that a zero modulus is a
// programmer error, not a silent zero.
func TestUint64n_ZeroPanics(t *testing.T) {
	s := NewSeeded(1)
	assert.Panics(t, func() { Uint64n(s, 0) })
}

// TestPerm_IsPermutation verifies every draw is a permutation of [0, n).
func TestPerm_IsPermutation(t *testing.T) {
	s := NewSeeded(42)
	for _, n := range []int{0, 1, 2, 4, 9} {
		p := Perm(s, n)
		require.Len(t, p, n)

		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v, "n=%d: permutation missing %d", n, i)
		}
	}
}

// TestPerm_VariesAcrossDraws verifies consecutive permutations are not all
// identical, the property the harness shuffling exists for.
func TestPerm_VariesAcrossDraws(t *testing.T) {
	s := NewSeeded(42)
	first := Perm(s, 4)
	for n := 0; n < 32; n++ {
		next := Perm(s, 4)
		if !assert.ObjectsAreEqual(first, next) {
			return
		}
	}
	t.Fatalf("32 consecutive permutations all equal to %v", first)
}

// TestPerm_Deterministic verifies a fixed seed replays the same shuffle
// sequence.
func TestPerm_Deterministic(t *testing.T) {
	a := NewSeeded(9)
	b := NewSeeded(9)
	for n := 0; n < 16; n++ {
		assert.Equal(t, Perm(a, 4), Perm(b, 4))
	}
}

// TestNewCounter_Draws verifies the counter source produces usable draws.
func TestNewCounter_Draws(t *testing.T) {
	s := NewCounter()
	v := Uint64n(s, 16384)
	assert.Less(t, v, uint64(16384))
}

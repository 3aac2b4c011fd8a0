package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fitbench/fit/entropy"
)

// TestGenerate_PacksContiguously verifies the structural guarantees over a
// thousand default workloads: counts in range, lengths powers of two
// inside the default span, addresses the running sum, maxLen accurate.
// Per-block checks are plain comparisons because the sample covers
// millions of blocks.
func TestGenerate_PacksContiguously(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(42), nil)

	for round := 0; round < 1000; round++ {
		list, maxLen := g.Generate()

		require.GreaterOrEqual(t, len(list), MinBlocks, "round %d", round)
		require.Less(t, len(list), MinBlocks+DefaultMaxBlocks, "round %d", round)

		var addr, seenMax uint64
		for i, b := range list {
			if b.Address != addr {
				t.Fatalf("round %d block %d: address %d, want running sum %d",
					round, i, b.Address, addr)
			}
			if b.Length < 2 || b.Length > 256 || b.Length&(b.Length-1) != 0 {
				t.Fatalf("round %d block %d: length %d outside the power-of-two span",
					round, i, b.Length)
			}
			if b.Length > seenMax {
				seenMax = b.Length
			}
			addr += b.Length
		}
		require.Equal(t, seenMax, maxLen, "round %d", round)
	}
}

// TestGenerate_MinimumCount verifies the floor holds even when the draw
// range collapses to a single value.
func TestGenerate_MinimumCount(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(1), &Options{MaxBlocks: 1})
	list, _ := g.Generate()
	assert.Len(t, list, MinBlocks)
}

// TestGenerate_RespectsOptions verifies a narrowed exponent bound narrows
// the produced lengths.
func TestGenerate_RespectsOptions(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(3), &Options{MaxBlocks: 64, MaxLengthPow2: 3})
	list, maxLen := g.Generate()

	for _, b := range list {
		assert.Contains(t, []uint64{2, 4, 8}, b.Length)
	}
	assert.LessOrEqual(t, maxLen, uint64(8))
}

// TestTarget_BelowMax verifies targets never exceed what the workload can
// satisfy.
func TestTarget_BelowMax(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(5), nil)
	_, maxLen := g.Generate()
	for n := 0; n < 100; n++ {
		assert.Less(t, g.Target(maxLen), maxLen)
	}
}

// TestGenerate_Deterministic verifies a seeded source replays identical
// workload sequences.
func TestGenerate_Deterministic(t *testing.T) {
	a := NewGenerator(entropy.NewSeeded(42), &Options{MaxBlocks: 256})
	b := NewGenerator(entropy.NewSeeded(42), &Options{MaxBlocks: 256})

	for n := 0; n < 10; n++ {
		la, ma := a.Generate()
		lb, mb := b.Generate()
		require.Equal(t, la, lb)
		require.Equal(t, ma, mb)
		require.Equal(t, a.Target(ma), b.Target(mb))
	}
}

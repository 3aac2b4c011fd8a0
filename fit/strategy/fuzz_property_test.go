package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fitbench/fit"
	"github.com/joshuapare/fitbench/fit/entropy"
	"github.com/joshuapare/fitbench/fit/workload"
)

// TestFuzz_RandomWorkloads hammers every strategy with seeded random
// workloads and validates the full outcome of each removal through the
// checker: the winner fits, came from the list, and exactly it is gone.
func TestFuzz_RandomWorkloads(t *testing.T) {
	const rounds = 300

	g := workload.NewGenerator(entropy.NewSeeded(1234), &workload.Options{MaxBlocks: 64})

	for round := 0; round < rounds; round++ {
		list, maxLen := g.Generate()
		want := g.Target(maxLen)
		check := NewChecker(list, want)

		var first fit.Block
		for i, s := range All() {
			clone := list.Clone()
			won, err := s.Take(&clone, want)
			require.NoError(t, err, "round %d: %s want=%d", round, s.Name(), want)
			require.NoError(t, check.Verify(s.Name(), won, clone),
				"round %d: want=%d", round, want)

			if i == 0 {
				first = won
			} else {
				require.Equal(t, first, won, "round %d: want=%d", round, want)
			}
		}
	}
}

// TestFuzz_TightRequests drives requests at exactly maxLen, where only the
// largest blocks fit, to stress the thin end of the candidate range.
func TestFuzz_TightRequests(t *testing.T) {
	g := workload.NewGenerator(entropy.NewSeeded(99), &workload.Options{MaxBlocks: 32})

	for round := 0; round < 200; round++ {
		list, maxLen := g.Generate()
		check := NewChecker(list, maxLen)

		for _, s := range All() {
			clone := list.Clone()
			won, err := s.Take(&clone, maxLen)
			require.NoError(t, err, "round %d: %s", round, s.Name())
			require.Equal(t, maxLen, won.Length,
				"round %d: only maxLen blocks can satisfy want=maxLen", round)
			require.NoError(t, check.Verify(s.Name(), won, clone), "round %d", round)
		}
	}
}

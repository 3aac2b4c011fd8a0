package strategy

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit"
)

// Rebuild selects by filtering the candidates that fit, taking their
// minimum, and reconstructing the list without the winner.
type Rebuild struct{}

var _ Strategy = Rebuild{}

// Name implements Strategy.
func (Rebuild) Name() string { return "rebuild" }

// Take implements Strategy.
func (Rebuild) Take(blocks *fit.List, want uint64) (fit.Block, error) {
	list := *blocks

	candidates := make(fit.List, 0, len(list))
	for _, b := range list {
		if b.Length >= want {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return fit.Block{}, errors.Wrapf(ErrNoFit,
			"rebuild: want=%d over %d blocks", want, len(list))
	}

	// MinFunc returns the first minimal element, which preserves list-order
	// preference among equal lengths.
	won := slices.MinFunc(candidates, func(a, b fit.Block) int {
		return cmp.Compare(a.Length, b.Length)
	})

	kept := make(fit.List, 0, len(list)-1)
	removed := false
	for _, b := range list {
		if !removed && b.Address == won.Address {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	*blocks = kept
	return won, nil
}

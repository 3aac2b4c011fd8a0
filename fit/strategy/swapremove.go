package strategy

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit"
)

// SwapRemove selects by enumerating the indexes of fitting blocks, taking
// the index of the minimum length, and removing it with a swap-remove.
type SwapRemove struct{}

var _ Strategy = SwapRemove{}

// Name implements Strategy.
func (SwapRemove) Name() string { return "swap-remove" }

// Take implements Strategy.
func (SwapRemove) Take(blocks *fit.List, want uint64) (fit.Block, error) {
	list := *blocks

	idxs := make([]int, 0, len(list))
	for i, b := range list {
		if b.Length >= want {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return fit.Block{}, errors.Wrapf(ErrNoFit,
			"swap-remove: want=%d over %d blocks", want, len(list))
	}

	// MinFunc returns the first minimal element, so among equal lengths the
	// lowest index wins.
	at := slices.MinFunc(idxs, func(i, j int) int {
		return cmp.Compare(list[i].Length, list[j].Length)
	})
	return blocks.SwapRemove(at), nil
}

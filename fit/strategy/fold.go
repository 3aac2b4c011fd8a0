package strategy

import (
	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit"
)

// Fold selects by reducing the list through an accumulator that carries the
// best candidate seen so far, then removes the winner with a swap-remove.
type Fold struct{}

var _ Strategy = Fold{}

// foldAcc carries the reduction state. idx stays -1 until a candidate fits.
// A value type keeps the reduction allocation free inside timed regions.
type foldAcc struct {
	idx   int
	block fit.Block
}

// Name implements Strategy.
func (Fold) Name() string { return "fold" }

// Take implements Strategy.
func (Fold) Take(blocks *fit.List, want uint64) (fit.Block, error) {
	list := *blocks

	acc := foldAcc{idx: -1}
	for i, b := range list {
		// Strict improvement only, so the first of equal lengths sticks.
		if b.Length >= want && (acc.idx < 0 || b.Length < acc.block.Length) {
			acc = foldAcc{idx: i, block: b}
		}
	}
	if acc.idx < 0 {
		return fit.Block{}, errors.Wrapf(ErrNoFit,
			"fold: want=%d over %d blocks", want, len(list))
	}
	return blocks.SwapRemove(acc.idx), nil
}

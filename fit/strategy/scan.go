package strategy

import (
	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit"
)

// Scan selects with a plain indexed loop tracking the best index and length
// seen so far. It is the baseline the shaped strategies are compared against.
type Scan struct{}

var _ Strategy = Scan{}

// Name implements Strategy.
func (Scan) Name() string { return "scan" }

// Take implements Strategy.
func (Scan) Take(blocks *fit.List, want uint64) (fit.Block, error) {
	list := *blocks

	at := -1
	var smallest uint64
	for i := range list {
		length := list[i].Length
		// Strict improvement only, so the first of equal lengths sticks.
		if length >= want && (at < 0 || length < smallest) {
			at = i
			smallest = length
		}
	}
	if at < 0 {
		return fit.Block{}, errors.Wrapf(ErrNoFit,
			"scan: want=%d over %d blocks", want, len(list))
	}
	return blocks.SwapRemove(at), nil
}

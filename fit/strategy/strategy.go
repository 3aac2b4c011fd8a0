package strategy

import "github.com/joshuapare/fitbench/fit"

// Strategy removes the best-fit block for a wanted size from a free list.
type Strategy interface {
	// Name identifies the strategy in reports and diagnostics.
	Name() string

	// Take removes and returns the smallest block with Length >= want,
	// preferring the first such block in list order on ties. The list is
	// mutated in place. On failure the list is left unchanged and the
	// returned error wraps ErrNoFit.
	Take(blocks *fit.List, want uint64) (fit.Block, error)
}

// All returns the comparison set in its canonical order.
func All() []Strategy {
	return []Strategy{Rebuild{}, SwapRemove{}, Fold{}, Scan{}}
}

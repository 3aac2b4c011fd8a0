package strategy

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"

	"github.com/joshuapare/fitbench/fit"
)

// Checker validates a strategy's outcome against a snapshot of the list it
// ran on. One checker serves every strategy of the same round because they
// all start from clones of the same snapshot.
type Checker struct {
	want   uint64
	count  int
	byAddr *swiss.Map[uint64, uint64]
}

// NewChecker indexes the snapshot by address for the given wanted size.
func NewChecker(snapshot fit.List, want uint64) *Checker {
	byAddr := swiss.NewMap[uint64, uint64](uint32(len(snapshot)))
	for _, b := range snapshot {
		byAddr.Put(b.Address, b.Length)
	}
	return &Checker{want: want, count: len(snapshot), byAddr: byAddr}
}

// Verify checks that winner satisfies the request, came from the snapshot,
// and that after is exactly the snapshot minus the winner. The name tags
// any failure with the strategy that produced it.
func (c *Checker) Verify(name string, winner fit.Block, after fit.List) error {
	if winner.Length < c.want {
		return errors.Newf("%s: winner %s does not satisfy want=%d",
			name, winner, c.want)
	}
	length, ok := c.byAddr.Get(winner.Address)
	if !ok {
		return errors.Newf("%s: winner %s not in the original list", name, winner)
	}
	if length != winner.Length {
		return errors.Newf("%s: winner %s has length %d in the original list",
			name, winner, length)
	}

	if len(after) != c.count-1 {
		return errors.Newf("%s: %d blocks remain, expected %d",
			name, len(after), c.count-1)
	}

	seen := swiss.NewMap[uint64, struct{}](uint32(len(after)))
	for _, b := range after {
		if b.Address == winner.Address {
			return errors.Newf("%s: winner %s still present after removal",
				name, winner)
		}
		length, ok := c.byAddr.Get(b.Address)
		if !ok {
			return errors.Newf("%s: block %s not in the original list", name, b)
		}
		if length != b.Length {
			return errors.Newf("%s: block %s has length %d in the original list",
				name, b, length)
		}
		if _, dup := seen.Get(b.Address); dup {
			return errors.Newf("%s: block %s appears twice after removal", name, b)
		}
		seen.Put(b.Address, struct{}{})
	}
	return nil
}

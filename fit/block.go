package fit

import "fmt"

// Block is a contiguous free region.
type Block struct {
	Address uint64
	Length  uint64
}

// End returns the first address past the block.
func (b Block) End() uint64 { return b.Address + b.Length }

// String formats the block for diagnostics.
func (b Block) String() string {
	return fmt.Sprintf("{addr:%d len:%d}", b.Address, b.Length)
}

// List is an ordered free list.
type List []Block

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// SwapRemove removes the block at index i by moving the last block into its
// slot and shrinking the list by one. Relative order is not preserved.
func (l *List) SwapRemove(i int) Block {
	s := *l
	b := s[i]
	s[i] = s[len(s)-1]
	*l = s[:len(s)-1]
	return b
}

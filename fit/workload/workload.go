// Package workload builds the synthetic free lists the benchmark measures
// against.
//
// # Shape
//
// Each workload is a contiguously packed free list: block count is drawn
// uniformly, each length is a power of two, and addresses are the running
// sum of the lengths before them. Contiguous packing keeps every address
// unique, which the equality checks and the verification index rely on.
//
// # Determinism
//
// A Generator owns no entropy of its own. Every draw comes from the injected
// source, so a seeded source replays the exact same workload sequence and a
// counter source gives a fresh one per run.
package workload

import (
	"github.com/joshuapare/fitbench/fit"
	"github.com/joshuapare/fitbench/fit/entropy"
)

const (
	// DefaultMaxBlocks bounds how many blocks a workload adds on top of the
	// minimum. Drawn counts land in [MinBlocks, MinBlocks+DefaultMaxBlocks).
	DefaultMaxBlocks = 16384

	// DefaultMaxLengthPow2 bounds the length exponent. Lengths are
	// 2^(draw+1) with draw in [0, DefaultMaxLengthPow2), so defaults span
	// 2 through 256.
	DefaultMaxLengthPow2 = 8

	// MinBlocks is the smallest list any workload produces. A floor keeps
	// every strategy busy even on the smallest draws.
	MinBlocks = 10
)

// Options tunes a Generator. Zero fields take the package defaults.
type Options struct {
	// MaxBlocks bounds the block count drawn on top of MinBlocks.
	MaxBlocks uint64

	// MaxLengthPow2 bounds the length exponent.
	MaxLengthPow2 uint64
}

// Generator produces free lists from an injected entropy source.
type Generator struct {
	src     entropy.Source
	blocks  uint64
	lenPow2 uint64
}

// NewGenerator returns a generator drawing from src. A nil opts uses the
// defaults.
func NewGenerator(src entropy.Source, opts *Options) *Generator {
	g := &Generator{
		src:     src,
		blocks:  DefaultMaxBlocks,
		lenPow2: DefaultMaxLengthPow2,
	}
	if opts != nil {
		if opts.MaxBlocks > 0 {
			g.blocks = opts.MaxBlocks
		}
		if opts.MaxLengthPow2 > 0 {
			g.lenPow2 = opts.MaxLengthPow2
		}
	}
	return g
}

// Generate draws a fresh contiguously packed free list and returns it along
// with the largest block length it contains.
func (g *Generator) Generate() (fit.List, uint64) {
	count := entropy.Uint64n(g.src, g.blocks) + MinBlocks

	list := make(fit.List, 0, count)
	var addr, maxLen uint64
	for i := uint64(0); i < count; i++ {
		length := uint64(1) << (entropy.Uint64n(g.src, g.lenPow2) + 1)
		if length > maxLen {
			maxLen = length
		}
		list = append(list, fit.Block{Address: addr, Length: length})
		addr += length
	}
	return list, maxLen
}

// Target draws a request size in [0, maxLen), guaranteeing at least one
// block in the list the maxLen came from can satisfy it.
func (g *Generator) Target(maxLen uint64) uint64 {
	return entropy.Uint64n(g.src, maxLen)
}

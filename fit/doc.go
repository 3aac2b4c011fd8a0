// Package fit defines the free-block model shared by the workload
// generator, the selection strategies, and the benchmark harness.
//
// # Blocks
//
// A Block describes a contiguous free region by address and length. Blocks
// carry no backing storage: the benchmark models selection only, so blocks
// are plain values with structural equality.
//
// # Free lists
//
// A List is an ordered sequence of blocks. Generated workloads pack blocks
// contiguously, which makes addresses strictly increasing and unique;
// several consumers rely on address uniqueness to identify blocks.
// Strategies mutate a list only by removing exactly one block per call.
package fit

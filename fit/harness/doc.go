// Package harness runs the full strategy comparison.
//
// # Flow
//
// Each iteration generates one workload, clones it once per strategy, runs
// every strategy against its own clone in a freshly shuffled order, and
// cross-checks that all strategies removed the same block. Any failure or
// disagreement aborts the run with a diagnostic naming the iteration.
//
// # Measurement
//
// Workload creation and each strategy execution run inside scoped profile
// regions, so every cycle lands in an explicit accumulator. The target
// draw, the shuffle, and optional verification sit outside every timed
// region so they never pollute the comparison.
package harness

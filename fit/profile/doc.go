// Package profile accumulates per-region cycle costs and renders them as a
// report.
//
// # Regions
//
// The region set is fixed at compile time: one region for workload
// creation and one per strategy. Fixing the set keeps recording a plain
// array index with no locking or lookup inside timed code.
//
// # Accumulation
//
// A Profile is an explicit accumulator passed to whoever records into it.
// There is no package-level state, so independent runs never bleed into
// each other and tests can poke synthetic numbers straight in. Time wraps
// a span in counter reads; Add takes a precomputed delta. Regions are
// never nested here, but nothing breaks if they are, the cycles simply
// count twice.
package profile

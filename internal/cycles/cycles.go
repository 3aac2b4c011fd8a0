// Package cycles reads the CPU cycle counter backing all benchmark timing.
package cycles

// Now returns the current hardware cycle counter. On amd64 this is RDTSC
// and on arm64 the virtual counter CNTVCT_EL0; other platforms fall back
// to monotonic nanoseconds, which keeps deltas meaningful at a coarser
// resolution. Values are only comparable within a single process run.
func Now() uint64 { return now() }

// Package rusage snapshots process resource consumption for the end-of-run
// summary.
package rusage

import "time"

// Usage is a point-in-time view of what the process has consumed.
type Usage struct {
	// MaxRSSKiB is the peak resident set size in KiB.
	MaxRSSKiB int64

	// User is CPU time spent in user mode.
	User time.Duration

	// System is CPU time spent in the kernel.
	System time.Duration
}

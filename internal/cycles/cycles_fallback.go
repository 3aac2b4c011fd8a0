//go:build !amd64 && !arm64

package cycles

import "time"

var base = time.Now()

// now falls back to monotonic nanoseconds since package init.
func now() uint64 { return uint64(time.Since(base)) }

//go:build darwin

package rusage

import (
	"time"

	"golang.org/x/sys/unix"
)

// Read returns resource usage for the calling process.
//
// Darwin reports ru_maxrss in bytes; scale it down to match Linux.
func Read() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, err
	}
	return Usage{
		MaxRSSKiB: int64(ru.Maxrss) / 1024,
		User:      time.Duration(ru.Utime.Nano()),
		System:    time.Duration(ru.Stime.Nano()),
	}, nil
}

//go:build linux

package rusage

import (
	"time"

	"golang.org/x/sys/unix"
)

// Read returns resource usage for the calling process.
//
// Linux reports ru_maxrss in kilobytes, so no scaling is needed.
func Read() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, err
	}
	return Usage{
		MaxRSSKiB: int64(ru.Maxrss),
		User:      time.Duration(ru.Utime.Nano()),
		System:    time.Duration(ru.Stime.Nano()),
	}, nil
}

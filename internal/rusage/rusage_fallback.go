//go:build !linux && !darwin

package rusage

import "github.com/cockroachdb/errors"

// ErrUnsupported is returned where getrusage is unavailable. Callers treat
// the summary as optional and omit it.
var ErrUnsupported = errors.New("rusage: not supported on this platform")

// Read is unavailable on this platform.
func Read() (Usage, error) { return Usage{}, ErrUnsupported }

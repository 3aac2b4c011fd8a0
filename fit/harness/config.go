package harness

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit/workload"
)

// Report formats accepted by Config.Format.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Config tunes one benchmark run.
type Config struct {
	// Iterations is how many workload rounds the run measures.
	Iterations uint64

	// Seed seeds the entropy source driving workload shapes, targets, and
	// execution order. Two runs with the same seed replay the same inputs.
	// Ignored when CounterEntropy is set.
	Seed uint64

	// CounterEntropy draws entropy from the cycle counter instead of a
	// seeded generator, giving different inputs every run.
	CounterEntropy bool

	// MaxBlocks bounds the workload block count drawn on top of the
	// generator minimum.
	MaxBlocks uint64

	// Check validates every removal against a snapshot of its input list.
	// The validation runs outside the timed regions but still slows the
	// run down.
	Check bool

	// Format selects the report rendering.
	Format string

	// Output receives the report. Defaults to standard output.
	Output io.Writer

	// Logger receives progress and diagnostics. Defaults to discarding
	// everything.
	Logger *slog.Logger
}

// DefaultConfig returns the standard run shape.
func DefaultConfig() Config {
	return Config{
		Iterations: 10000,
		MaxBlocks:  workload.DefaultMaxBlocks,
		Format:     FormatTable,
		Output:     os.Stdout,
	}
}

// Validate reports the first configuration problem.
func (c Config) Validate() error {
	if c.Iterations == 0 {
		return errors.New("harness: iterations must be positive")
	}
	if c.MaxBlocks == 0 {
		return errors.New("harness: max blocks must be positive")
	}
	switch c.Format {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		return errors.Newf("harness: unknown report format %q", c.Format)
	}
	return nil
}

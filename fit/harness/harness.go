package harness

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/fitbench/fit"
	"github.com/joshuapare/fitbench/fit/entropy"
	"github.com/joshuapare/fitbench/fit/profile"
	"github.com/joshuapare/fitbench/fit/strategy"
	"github.com/joshuapare/fitbench/fit/workload"
)

// progressEvery is the iteration interval between progress log lines.
const progressEvery = 1000

// Harness owns everything one comparison run needs.
type Harness struct {
	cfg        Config
	src        entropy.Source
	gen        *workload.Generator
	strategies []strategy.Strategy
	prof       *profile.Profile
	log        *slog.Logger
}

// New builds a harness from cfg, wiring the entropy source, the workload
// generator, and an empty profile.
func New(cfg Config) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var src entropy.Source
	if cfg.CounterEntropy {
		src = entropy.NewCounter()
	} else {
		src = entropy.NewSeeded(cfg.Seed)
	}

	strategies := strategy.All()
	if len(strategies) != len(profile.Regions())-1 {
		return nil, errors.Newf("harness: %d strategies but %d strategy regions",
			len(strategies), len(profile.Regions())-1)
	}

	return &Harness{
		cfg: cfg,
		src: src,
		gen: workload.NewGenerator(src, &workload.Options{
			MaxBlocks: cfg.MaxBlocks,
		}),
		strategies: strategies,
		prof:       profile.New(),
		log:        log,
	}, nil
}

// Profile returns the accumulated cycle profile.
func (h *Harness) Profile() *profile.Profile {
	return h.prof
}

// Run executes the configured iterations, accumulating the profile. It
// stops at the first strategy failure, verification failure, or winner
// disagreement.
func (h *Harness) Run() error {
	winners := make([]fit.Block, len(h.strategies))
	clones := make([]fit.List, len(h.strategies))

	for iter := uint64(0); iter < h.cfg.Iterations; iter++ {
		var list fit.List
		var maxLen uint64
		h.prof.Time(profile.RegionWorkload, func() {
			list, maxLen = h.gen.Generate()
			for i := range clones {
				clones[i] = list.Clone()
			}
		})

		want := h.gen.Target(maxLen)

		var check *strategy.Checker
		if h.cfg.Check {
			check = strategy.NewChecker(list, want)
		}

		// A fresh shuffle per iteration keeps no strategy permanently
		// first in line for warm caches and a trained branch predictor.
		for _, i := range entropy.Perm(h.src, len(h.strategies)) {
			s := h.strategies[i]

			var won fit.Block
			var err error
			h.prof.Time(profile.StrategyRegion(i), func() {
				won, err = s.Take(&clones[i], want)
			})
			if err != nil {
				return errors.Wrapf(err, "iteration %d", iter)
			}
			winners[i] = won

			if check != nil {
				if err := check.Verify(s.Name(), won, clones[i]); err != nil {
					return errors.Wrapf(err, "iteration %d", iter)
				}
			}
		}

		for i := 1; i < len(winners); i++ {
			if winners[i] != winners[0] {
				return errors.Newf(
					"iteration %d: %s chose %s but %s chose %s for want=%d",
					iter, h.strategies[i].Name(), winners[i],
					h.strategies[0].Name(), winners[0], want)
			}
		}

		if (iter+1)%progressEvery == 0 {
			h.log.Debug("benchmark progress",
				"iteration", iter+1, "of", h.cfg.Iterations)
		}
	}
	return nil
}

// WriteReport renders the profile to the configured output in the
// configured format.
func (h *Harness) WriteReport() error {
	switch h.cfg.Format {
	case FormatCSV:
		h.prof.WriteCSV(h.cfg.Output)
	case FormatJSON:
		return h.prof.WriteJSON(h.cfg.Output)
	default:
		h.prof.WriteReport(h.cfg.Output)
	}
	return nil
}

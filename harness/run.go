package harness

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
	"github.com/IMalaspina/dvmath-extensions/zerodiv"
)

// Report is the outcome of one validation run: every per-pair result plus
// the aggregate summary. ConfiguredPairs is the denominator a "fully
// validated" claim must be checked against.
type Report struct {
	Mode            string   `json:"mode"`
	Threshold       float64  `json:"threshold"`
	ConfiguredPairs int      `json:"configuredPairs"`
	SampleSeed      *int64   `json:"sampleSeed,omitempty"`
	Results         []Result `json:"results"`
	Summary         Summary  `json:"summary"`
}

// RunExhaustive validates every pair and aggregates the results. Result
// order matches pair order regardless of worker count.
func RunExhaustive(ctx context.Context, alg *hypercomplex.Algebra, pairs []zerodiv.Pair, opts Options) (*Report, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("validation run starting",
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", opts.Workers),
		zap.String("mode", opts.Mode.String()),
		zap.Float64("threshold", opts.Threshold),
	)

	results := make([]Result, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for _, part := range partition(len(pairs), opts.Workers) {
		part := part
		g.Go(func() error {
			for i := part.lo; i < part.hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := validatePair(alg, pairs[i], i, opts)
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run exhaustive: %w", err)
	}

	report := &Report{
		Mode:            opts.Mode.String(),
		Threshold:       opts.Threshold,
		ConfiguredPairs: len(pairs),
		Results:         results,
		Summary:         Summarize(results),
	}
	opts.Logger.Info("validation run finished",
		zap.Int("total", report.Summary.TotalTests),
		zap.Int("successful", report.Summary.Successful),
		zap.Int("failed", report.Summary.Failed),
		zap.Int("skippedNotZeroDivisor", report.Summary.SkippedNotZeroDivisor),
		zap.Float64("successRate", report.Summary.SuccessRate),
	)
	return report, nil
}

// RunSampled validates a reproducible random subset. The subset is drawn
// from the seed before any parallel work starts and reported in ascending
// pair order, so runs are identical for any worker count.
func RunSampled(ctx context.Context, alg *hypercomplex.Algebra, pairs []zerodiv.Pair, count int, seed int64, opts Options) (*Report, error) {
	if count > len(pairs) {
		count = len(pairs)
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(pairs))[:count]
	sort.Ints(perm)

	subset := make([]zerodiv.Pair, count)
	for i, idx := range perm {
		subset[i] = pairs[idx]
	}

	report, err := RunExhaustive(ctx, alg, subset, opts)
	if err != nil {
		return nil, err
	}
	report.SampleSeed = &seed
	return report, nil
}

type span struct{ lo, hi int }

// partition splits [0, n) into at most workers contiguous ranges of
// near-equal size.
func partition(n, workers int) []span {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	spans := make([]span, 0, workers)
	size := n / workers
	rem := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}

package harness

import (
	"context"
	"fmt"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
	"github.com/IMalaspina/dvmath-extensions/zerodiv"
)

// Sampler supplies externally generated zero-divisor pairs, typically
// canonical pairs pushed through structure-preserving (G2) automorphisms by
// a separate tool. The sampler's contract is that returned products still
// vanish; the harness does not trust that contract and re-validates every
// pair, surfacing violations as SkippedNotZeroDivisor. Naive rotations
// (random SO(16)) are known to break the zero-divisor property, and runs
// fed by them must say so in their summary.
type Sampler interface {
	Sample(n int) ([]zerodiv.Pair, error)
}

// RunSampler draws n pairs from the sampler and validates them exactly the
// way an exhaustive run would.
func RunSampler(ctx context.Context, alg *hypercomplex.Algebra, s Sampler, n int, opts Options) (*Report, error) {
	pairs, err := s.Sample(n)
	if err != nil {
		return nil, fmt.Errorf("run sampler: %w", err)
	}
	return RunExhaustive(ctx, alg, pairs, opts)
}

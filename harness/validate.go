// Package harness validates singularity treatment over zero-divisor pairs.
//
// For every pair (A, B) the harness computes the untreated product norm and
// both treated norms, ASTO(A)*B and A*ASTO(B), then judges success under
// the configured mode. Failures are data: a pair that resists treatment is
// retained with full diagnostics and drags the success rate below 100%,
// never silently dropped. The run history of this research includes exactly
// that mistake being made and corrected, so the accounting here is strict.
//
// Runs are embarrassingly parallel: pairs are partitioned into contiguous
// index ranges, validated by a worker group, and collected into a
// pre-sized result slice. Sampled runs draw a seeded, reproducible subset
// before the fan-out, so worker count never affects which pairs are tested
// or the order they are reported in.
package harness

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
	"github.com/IMalaspina/dvmath-extensions/treatment"
	"github.com/IMalaspina/dvmath-extensions/zerodiv"
)

// Mode selects the success criterion. The two criteria are not
// interchangeable and there is deliberately no default: runs must say
// which claim they are making.
type Mode int

const (
	// ModeUnspecified is invalid and rejected by Validate.
	ModeUnspecified Mode = iota
	// ModeAdaptive succeeds when at least one treated side clears the
	// threshold (the asto-on-A-then-B strategy).
	ModeAdaptive
	// ModeStrictBoth succeeds only when both treated sides clear the
	// threshold (the dual-proof criterion behind the "fully validated"
	// claim).
	ModeStrictBoth
)

func (m Mode) String() string {
	switch m {
	case ModeAdaptive:
		return "adaptive"
	case ModeStrictBoth:
		return "strict-both"
	default:
		return "unspecified"
	}
}

// ErrModeUnspecified reports options that never chose a success criterion.
var ErrModeUnspecified = errors.New("harness: validation mode must be set")

// Options configures a validation run.
type Options struct {
	Mode      Mode
	Threshold float64               // treated product norms must exceed this
	Eps       float64               // zero-product tolerance for pair screening
	Precision hypercomplex.Precision // numeric backend; ModeBig re-checks products exactly
	Workers   int                   // parallel validators; <= 0 means NumCPU
	Logger    *zap.Logger           // nil means no logging
}

// DefaultOptions returns float64 validation with NumCPU workers. The mode
// is left unspecified on purpose; callers must pick one.
func DefaultOptions() Options {
	return Options{
		Threshold: hypercomplex.DefaultTol,
		Eps:       hypercomplex.DefaultTol,
		Precision: hypercomplex.DefaultPrecision(),
		Workers:   runtime.NumCPU(),
	}
}

func (o Options) validate() (Options, error) {
	if o.Mode != ModeAdaptive && o.Mode != ModeStrictBoth {
		return o, ErrModeUnspecified
	}
	if o.Threshold <= 0 {
		o.Threshold = hypercomplex.DefaultTol
	}
	if o.Eps <= 0 {
		o.Eps = o.Precision.Eps()
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// Result is the per-pair validation record. Both treated norms are always
// computed regardless of mode, so a report never hides the direction that
// failed.
type Result struct {
	Index             int               `json:"index"`
	LabelA            string            `json:"labelA"`
	LabelB            string            `json:"labelB"`
	ProductNorm       float64           `json:"productNorm"`
	TreatedFirstNorm  float64           `json:"treatedFirstNorm"`  // ||ASTO(A)*B||
	TreatedSecondNorm float64           `json:"treatedSecondNorm"` // ||A*ASTO(B)||
	FirstOK           bool              `json:"firstOK"`
	SecondOK          bool              `json:"secondOK"`
	Success           bool              `json:"success"`
	Applied           treatment.Applied `json:"applied"`
	NotZeroDivisor    bool              `json:"notZeroDivisor,omitempty"`
}

// ValidatePair runs both treatment directions on one pair and applies the
// configured criterion. A pair whose untreated product norm is not below
// Eps is marked NotZeroDivisor and skipped (Success=false, Applied empty):
// that happens with externally sampled pairs whose source broke its
// contract, and it must surface in the summary rather than pollute the
// treatment statistics.
func ValidatePair(alg *hypercomplex.Algebra, p zerodiv.Pair, opts Options) (Result, error) {
	opts, err := opts.validate()
	if err != nil {
		return Result{}, err
	}
	return validatePair(alg, p, 0, opts)
}

func validatePair(alg *hypercomplex.Algebra, p zerodiv.Pair, idx int, opts Options) (Result, error) {
	res := Result{
		Index:  idx,
		LabelA: p.LabelA,
		LabelB: p.LabelB,
	}

	prod, err := alg.Mul(p.A, p.B)
	if err != nil {
		return res, fmt.Errorf("validate pair %d: %w", idx, err)
	}
	res.ProductNorm = prod.Norm()
	if opts.Precision.Mode == hypercomplex.ModeBig {
		exact, err := bigProductNorm(p, opts.Precision)
		if err != nil {
			return res, fmt.Errorf("validate pair %d: %w", idx, err)
		}
		res.ProductNorm = exact
	}
	if res.ProductNorm >= opts.Eps {
		res.NotZeroDivisor = true
		return res, nil
	}

	ta, err := treatment.ASTO(p.A, treatment.First)
	if err != nil {
		return res, fmt.Errorf("validate pair %d: %w", idx, err)
	}
	firstProd, err := alg.Mul(ta, p.B)
	if err != nil {
		return res, fmt.Errorf("validate pair %d: %w", idx, err)
	}
	res.TreatedFirstNorm = firstProd.Norm()
	res.FirstOK = res.TreatedFirstNorm > opts.Threshold

	tb, err := treatment.ASTO(p.B, treatment.First)
	if err != nil {
		return res, fmt.Errorf("validate pair %d: %w", idx, err)
	}
	secondProd, err := alg.Mul(p.A, tb)
	if err != nil {
		return res, fmt.Errorf("validate pair %d: %w", idx, err)
	}
	res.TreatedSecondNorm = secondProd.Norm()
	res.SecondOK = res.TreatedSecondNorm > opts.Threshold

	switch opts.Mode {
	case ModeStrictBoth:
		// Both directions must hold; Applied stays empty on success
		// because no single side was "the" strategy.
		res.Success = res.FirstOK && res.SecondOK
		if !res.Success {
			res.Applied = treatment.AppliedNone
		}
	default: // ModeAdaptive, in the fixed A-then-B trial order
		switch {
		case res.FirstOK:
			res.Success = true
			res.Applied = treatment.AppliedFirst
		case res.SecondOK:
			res.Success = true
			res.Applied = treatment.AppliedSecond
		default:
			res.Applied = treatment.AppliedNone
		}
	}
	return res, nil
}

// bigProductNorm recomputes ||A*B|| in arbitrary precision and reports 0
// exactly when every product component cancels.
func bigProductNorm(p zerodiv.Pair, prec hypercomplex.Precision) (float64, error) {
	balg, err := hypercomplex.NewBig(len(p.A), prec)
	if err != nil {
		return 0, err
	}
	ba, err := balg.FromFloat(p.A)
	if err != nil {
		return 0, err
	}
	bb, err := balg.FromFloat(p.B)
	if err != nil {
		return 0, err
	}
	prod, err := balg.Mul(ba, bb)
	if err != nil {
		return 0, err
	}
	if prod.IsZero() {
		return 0, nil
	}
	n, err := prod.Norm()
	if err != nil {
		return 0, err
	}
	f, _ := n.AsFloat().Float64()
	return f, nil
}

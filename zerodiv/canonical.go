package zerodiv

import (
	"fmt"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// CanonicalCount is the size of the literature set of unit zero divisors
// (e_i + e_j)(e_k + e_l) with indices spanning the octonion split. The
// count is a theorem about the algebra, re-derived by the generator on
// every call; this constant exists for callers that size reports up front.
const CanonicalCount = 84

// Canonical returns the 84-pair canonical zero-divisor set, derived from
// the boundary-crossing positive-sign enumeration rather than a hardcoded
// table. Order is the generator's lexicographic order and is stable.
func Canonical(alg *hypercomplex.Algebra) ([]Pair, error) {
	if alg.Dim() != 16 {
		return nil, fmt.Errorf("canonical: %w (need dimension 16, got %d)",
			hypercomplex.ErrDimensionMismatch, alg.Dim())
	}
	pairs, err := Find(DefaultConfig(), alg)
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// CanonicalPair returns the idx-th canonical pair.
func CanonicalPair(alg *hypercomplex.Algebra, idx int) (Pair, error) {
	pairs, err := Canonical(alg)
	if err != nil {
		return Pair{}, err
	}
	if idx < 0 || idx >= len(pairs) {
		return Pair{}, fmt.Errorf("canonical pair: %w (index %d, size %d)",
			hypercomplex.ErrIndexOutOfRange, idx, len(pairs))
	}
	return pairs[idx], nil
}

// FormatPair renders a pair the way the research logs do:
// "(e1 + e10) x (e5 + e14)".
func FormatPair(p Pair) string {
	return fmt.Sprintf("(%s) x (%s)", p.LabelA, p.LabelB)
}

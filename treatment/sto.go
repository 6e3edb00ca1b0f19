// Package treatment implements the singularity treatment operators for the
// sedenion zero-divisor program.
//
// STO is a cyclic permutation of the eight octonion components. ASTO
// applies STO to exactly one Cayley-Dickson half of a sedenion, which is
// enough to break the destructive interference that makes a zero-divisor
// product vanish while leaving the other factor untouched.
//
// All operators are stateless, bijective and norm-preserving; applying STO
// eight times is the identity. Legacy treatment variants from earlier
// iterations of the research are kept in a catalog for comparison runs.
package treatment

import (
	"fmt"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// OctonionDim is the dimension STO operates on.
const OctonionDim = 8

// SedenionDim is the dimension ASTO operates on.
const SedenionDim = 16

// STO returns the cyclic left rotation (a1, ..., a7, a0) of an octonion.
// Guarantees: bijective, STO^8 = identity, norm-preserving, maps non-zero
// to non-zero. Fixed points are exactly the constant-component vectors.
func STO(a hypercomplex.Element) (hypercomplex.Element, error) {
	if len(a) != OctonionDim {
		return nil, fmt.Errorf("sto: %w (want %d components, got %d)",
			hypercomplex.ErrDimensionMismatch, OctonionDim, len(a))
	}
	out := make(hypercomplex.Element, OctonionDim)
	copy(out, a[1:])
	out[OctonionDim-1] = a[0]
	return out, nil
}

// Side selects which Cayley-Dickson half ASTO rotates.
type Side int

const (
	// First treats the half occupying components [0, 8).
	First Side = iota
	// Second treats the half occupying components [8, 16).
	Second
)

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ASTO applies STO to one half of a sedenion. As a permutation of the full
// 16-component vector it inherits every STO guarantee, including
// ASTO^8 = identity and norm preservation.
func ASTO(v hypercomplex.Element, side Side) (hypercomplex.Element, error) {
	if len(v) != SedenionDim {
		return nil, fmt.Errorf("asto: %w (want %d components, got %d)",
			hypercomplex.ErrDimensionMismatch, SedenionDim, len(v))
	}
	a, b := v.Halves()
	switch side {
	case First:
		ra, err := STO(a)
		if err != nil {
			return nil, err
		}
		return hypercomplex.Concat(ra, b), nil
	case Second:
		rb, err := STO(b)
		if err != nil {
			return nil, err
		}
		return hypercomplex.Concat(a, rb), nil
	default:
		return nil, fmt.Errorf("asto: unknown side %d", side)
	}
}

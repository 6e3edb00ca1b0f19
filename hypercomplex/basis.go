package hypercomplex

import (
	"fmt"
	"strings"
)

// Term is one signed basis contribution in a linear combination.
type Term struct {
	Index int
	Coeff float64
}

// Basis returns the basis vector e_i of the given dimension: all zeros with
// a single 1 at index i.
func Basis(dim, i int) (Element, error) {
	if i < 0 || i >= dim {
		return nil, fmt.Errorf("basis: %w (index %d, dim %d)", ErrIndexOutOfRange, i, dim)
	}
	e := make(Element, dim)
	e[i] = 1
	return e, nil
}

// Combine returns the sum of signed basis vectors described by terms.
func Combine(dim int, terms []Term) (Element, error) {
	e := make(Element, dim)
	for _, t := range terms {
		if t.Index < 0 || t.Index >= dim {
			return nil, fmt.Errorf("combine: %w (index %d, dim %d)", ErrIndexOutOfRange, t.Index, dim)
		}
		e[t.Index] += t.Coeff
	}
	return e, nil
}

// IsBoundaryCrossing reports whether the index set has members on both
// sides of the Cayley-Dickson split at half. Zero-divisor pairs of the
// sedenions are always boundary-crossing in this sense.
func IsBoundaryCrossing(indices []int, half int) bool {
	var below, above bool
	for _, i := range indices {
		if i < half {
			below = true
		} else {
			above = true
		}
	}
	return below && above
}

// Label renders a non-zero element as a signed sum of basis symbols:
// "e1 + e10", "e5 - e14", "2e3 + e7". Reporting only; the numeric core
// never parses labels.
func Label(e Element) string {
	var sb strings.Builder
	first := true
	for i, c := range e {
		if c == 0 {
			continue
		}
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 {
			fmt.Fprintf(&sb, "%g", abs)
		}
		fmt.Fprintf(&sb, "e%d", i)
		first = false
	}
	if first {
		return "0"
	}
	return sb.String()
}

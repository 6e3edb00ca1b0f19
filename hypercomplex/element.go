// Package hypercomplex provides the real vector algebra and recursive
// Cayley-Dickson construction underlying the sedenion zero-divisor core.
//
// This package implements the Element value type, a fixed-dimension sequence
// of float64 components, together with the Algebra multiplication rule built
// by doubling: reals(1) -> complex(2) -> quaternion(4) -> octonion(8) ->
// sedenion(16). The rule is an immutable value constructed once and safe for
// concurrent use.
//
// Key components:
//   - Element: immutable fixed-length component vector with norm and
//     tolerance-based equality
//   - Algebra: the Cayley-Dickson multiplication and conjugation rule for a
//     given power-of-two dimension
//   - Basis utilities: indexed basis vectors, signed combinations,
//     boundary-crossing detection and labeling
//   - BigAlgebra: the same construction over arbitrary-precision components
//
// Norm composition ||xy|| = ||x||*||y|| holds through dimension 8 and fails
// at dimension 16. That failure is not a defect: it is exactly why sedenion
// zero divisors exist, and the rest of this module is built to find and
// treat them.
package hypercomplex

import (
	"fmt"
	"math"
	"strings"
)

// DefaultTol is the component tolerance used when callers do not supply one.
const DefaultTol = 1e-9

// Element is an ordered, fixed-length sequence of real components.
// The length is fixed at construction; all arithmetic requires matching
// lengths. Elements are value types: operations return new elements and
// never mutate their operands.
type Element []float64

// NewElement copies components into a fresh Element.
func NewElement(components []float64) Element {
	e := make(Element, len(components))
	copy(e, components)
	return e
}

// Zero returns the zero element of the given dimension.
func Zero(dim int) Element {
	return make(Element, dim)
}

// One returns the multiplicative identity of the given dimension.
func One(dim int) Element {
	e := make(Element, dim)
	e[0] = 1
	return e
}

// Dim returns the number of components.
func (e Element) Dim() int { return len(e) }

// Clone returns an independent copy.
func (e Element) Clone() Element {
	return NewElement(e)
}

// Add returns e + other componentwise.
func (e Element) Add(other Element) (Element, error) {
	if len(e) != len(other) {
		return nil, fmt.Errorf("add: %w (%d vs %d)", ErrDimensionMismatch, len(e), len(other))
	}
	out := make(Element, len(e))
	for i := range e {
		out[i] = e[i] + other[i]
	}
	return out, nil
}

// Sub returns e - other componentwise.
func (e Element) Sub(other Element) (Element, error) {
	if len(e) != len(other) {
		return nil, fmt.Errorf("sub: %w (%d vs %d)", ErrDimensionMismatch, len(e), len(other))
	}
	out := make(Element, len(e))
	for i := range e {
		out[i] = e[i] - other[i]
	}
	return out, nil
}

// Scale returns k*e componentwise.
func (e Element) Scale(k float64) Element {
	out := make(Element, len(e))
	for i := range e {
		out[i] = k * e[i]
	}
	return out
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.Scale(-1)
}

// NormSquared returns the sum of squared components. Always >= 0.
func (e Element) NormSquared() float64 {
	var s float64
	for _, c := range e {
		s += c * c
	}
	return s
}

// Norm returns the Euclidean norm.
func (e Element) Norm() float64 {
	return math.Sqrt(e.NormSquared())
}

// ApproxEqual reports whether ||e - other||^2 < tol. Mismatched dimensions
// are never equal.
func (e Element) ApproxEqual(other Element, tol float64) bool {
	if len(e) != len(other) {
		return false
	}
	var s float64
	for i := range e {
		d := e[i] - other[i]
		s += d * d
	}
	return s < tol
}

// IsZero reports whether ||e|| < tol.
func (e Element) IsZero(tol float64) bool {
	return e.Norm() < tol
}

// Conjugate negates every component except the first.
func (e Element) Conjugate() Element {
	out := make(Element, len(e))
	if len(e) > 0 {
		out[0] = e[0]
	}
	for i := 1; i < len(e); i++ {
		out[i] = -e[i]
	}
	return out
}

// Inverse returns conj(e)/||e||^2. For dimensions >= 16 the result is only a
// one-sided candidate inverse; zero divisors have none and yield ErrZeroNorm.
func (e Element) Inverse(tol float64) (Element, error) {
	ns := e.NormSquared()
	if ns < tol*tol {
		return nil, ErrZeroNorm
	}
	return e.Conjugate().Scale(1 / ns), nil
}

// Halves splits a 2N-element into its Cayley-Dickson pair (a, b). The halves
// share no storage with e.
func (e Element) Halves() (Element, Element) {
	h := len(e) / 2
	return NewElement(e[:h]), NewElement(e[h:])
}

// Concat rebuilds a 2N-element from a Cayley-Dickson pair.
func Concat(a, b Element) Element {
	out := make(Element, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// String renders the components in fixed-point form, matching the reporting
// format of the research logs.
func (e Element) String() string {
	parts := make([]string, len(e))
	for i, c := range e {
		parts[i] = fmt.Sprintf("%.4f", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

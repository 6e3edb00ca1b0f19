package hypercomplex

import "fmt"

// Algebra is the multiplication rule for one power-of-two dimension, built
// recursively by the Cayley-Dickson doubling construction:
//
//	(a,b) * (c,d) = (ac - conj(d)b, da + b conj(c))
//	conj((a,b))   = (conj(a), -b)
//
// with ordinary real multiplication at dimension 1. An Algebra is read-only
// after construction and safe for concurrent use.
//
// Structural guarantees by dimension:
//
//	N <= 2   associative and commutative
//	N == 4   associative, non-commutative (quaternions)
//	N == 8   non-associative but alternative; norm composition holds
//	N >= 16  non-associative, norm composition fails, zero divisors exist
//
// Callers must never assume associativity above dimension 4.
type Algebra struct {
	dim int
}

// New returns the algebra for the given dimension. The dimension must be a
// power of two >= 1.
func New(dim int) (*Algebra, error) {
	if dim < 1 || dim&(dim-1) != 0 {
		return nil, fmt.Errorf("new algebra: %w (got %d)", ErrUnsupportedDimension, dim)
	}
	return &Algebra{dim: dim}, nil
}

// Dim returns the dimension this algebra multiplies in.
func (alg *Algebra) Dim() int { return alg.dim }

// Mul multiplies two elements of the algebra's dimension.
func (alg *Algebra) Mul(x, y Element) (Element, error) {
	if len(x) != alg.dim || len(y) != alg.dim {
		return nil, fmt.Errorf("mul: %w (algebra dim %d, operands %d and %d)",
			ErrDimensionMismatch, alg.dim, len(x), len(y))
	}
	return cdMul(x, y), nil
}

// Conjugate returns the Cayley-Dickson conjugate of x.
func (alg *Algebra) Conjugate(x Element) (Element, error) {
	if len(x) != alg.dim {
		return nil, fmt.Errorf("conjugate: %w (algebra dim %d, operand %d)",
			ErrDimensionMismatch, alg.dim, len(x))
	}
	return x.Conjugate(), nil
}

// cdMul is the recursive core. Operand lengths are equal powers of two;
// validation happens once at the Algebra boundary.
func cdMul(x, y Element) Element {
	if len(x) == 1 {
		return Element{x[0] * y[0]}
	}
	h := len(x) / 2
	a, b := x[:h], x[h:]
	c, d := y[:h], y[h:]

	// first half: ac - conj(d)b
	ac := cdMul(a, c)
	db := cdMul(conjugate(d), b)
	lo := make(Element, h, 2*h)
	for i := 0; i < h; i++ {
		lo[i] = ac[i] - db[i]
	}

	// second half: da + b conj(c)
	da := cdMul(d, a)
	bc := cdMul(b, conjugate(c))
	hi := make(Element, h)
	for i := 0; i < h; i++ {
		hi[i] = da[i] + bc[i]
	}

	return append(lo, hi...)
}

// conjugate is cdMul's internal helper; identical to Element.Conjugate but
// kept local so the recursion does not re-slice through method values.
func conjugate(x Element) Element {
	out := make(Element, len(x))
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = -x[i]
	}
	return out
}

// Associator returns (xy)z - x(yz), the standard non-associativity measure.
// Zero for N <= 4, generally non-zero for octonions and sedenions.
func (alg *Algebra) Associator(x, y, z Element) (Element, error) {
	xy, err := alg.Mul(x, y)
	if err != nil {
		return nil, err
	}
	yz, err := alg.Mul(y, z)
	if err != nil {
		return nil, err
	}
	left, err := alg.Mul(xy, z)
	if err != nil {
		return nil, err
	}
	right, err := alg.Mul(x, yz)
	if err != nil {
		return nil, err
	}
	return left.Sub(right)
}

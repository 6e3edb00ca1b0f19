package hypercomplex

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/predrag3141/IPSLQ/bignumber"
)

// bigInitOnce guards bignumber.Init, which sets process-global binary
// precision. The first BigAlgebra constructed fixes it; later constructions
// with a different digit count reuse the established precision (one
// big-precision setting per process, as the library is designed).
var (
	bigInitOnce sync.Once
	bigInitErr  error
)

// BigElement is a fixed-length sequence of arbitrary-precision components.
type BigElement []*bignumber.BigNumber

// BigAlgebra mirrors Algebra over bignumber components. It exists to
// re-check products whose float64 norm sits near the zero-detection
// tolerance, where double rounding could mask or fake a zero divisor.
type BigAlgebra struct {
	dim  int
	prec Precision
}

// NewBig returns the arbitrary-precision algebra for the given dimension.
func NewBig(dim int, prec Precision) (*BigAlgebra, error) {
	if dim < 1 || dim&(dim-1) != 0 {
		return nil, fmt.Errorf("new big algebra: %w (got %d)", ErrUnsupportedDimension, dim)
	}
	bigInitOnce.Do(func() {
		bigInitErr = bignumber.Init(int64(prec.Bits()))
	})
	if bigInitErr != nil {
		return nil, fmt.Errorf("new big algebra: %w", bigInitErr)
	}
	return &BigAlgebra{dim: dim, prec: prec}, nil
}

// Dim returns the dimension this algebra multiplies in.
func (alg *BigAlgebra) Dim() int { return alg.dim }

// FromFloat lifts a float64 element into big components.
func (alg *BigAlgebra) FromFloat(e Element) (BigElement, error) {
	if len(e) != alg.dim {
		return nil, fmt.Errorf("from float: %w (algebra dim %d, operand %d)",
			ErrDimensionMismatch, alg.dim, len(e))
	}
	out := make(BigElement, len(e))
	for i, c := range e {
		b, err := bignumber.NewFromDecimalString(strconv.FormatFloat(c, 'f', -1, 64))
		if err != nil {
			return nil, fmt.Errorf("from float: component %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// Float projects the big components back to float64.
func (e BigElement) Float() Element {
	out := make(Element, len(e))
	for i, b := range e {
		f, _ := b.AsFloat().Float64()
		out[i] = f
	}
	return out
}

// Mul multiplies two big elements with the same Cayley-Dickson recursion as
// the float64 algebra.
func (alg *BigAlgebra) Mul(x, y BigElement) (BigElement, error) {
	if len(x) != alg.dim || len(y) != alg.dim {
		return nil, fmt.Errorf("big mul: %w (algebra dim %d, operands %d and %d)",
			ErrDimensionMismatch, alg.dim, len(x), len(y))
	}
	return bigMul(x, y), nil
}

// NormSquared returns the exact sum of squared components.
func (e BigElement) NormSquared() *bignumber.BigNumber {
	s := bignumber.NewFromInt64(0)
	for _, c := range e {
		s.MulAdd(c, c)
	}
	return s
}

// Norm returns the square root of NormSquared.
func (e BigElement) Norm() (*bignumber.BigNumber, error) {
	n := bignumber.NewFromInt64(0)
	if _, err := n.Sqrt(e.NormSquared()); err != nil {
		return nil, fmt.Errorf("big norm: %w", err)
	}
	return n, nil
}

// IsZero reports whether every component is exactly zero. Basis-combination
// zero divisors cancel exactly in big arithmetic, so no tolerance is needed
// on this path.
func (e BigElement) IsZero() bool {
	for _, c := range e {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func bigMul(x, y BigElement) BigElement {
	if len(x) == 1 {
		return BigElement{bignumber.NewFromInt64(0).Mul(x[0], y[0])}
	}
	h := len(x) / 2
	a, b := x[:h], x[h:]
	c, d := y[:h], y[h:]

	ac := bigMul(a, c)
	db := bigMul(bigConjugate(d), b)
	da := bigMul(d, a)
	bc := bigMul(b, bigConjugate(c))

	out := make(BigElement, 2*h)
	for i := 0; i < h; i++ {
		out[i] = bignumber.NewFromInt64(0).Sub(ac[i], db[i])
		out[h+i] = bignumber.NewFromInt64(0).Add(da[i], bc[i])
	}
	return out
}

func bigConjugate(x BigElement) BigElement {
	out := make(BigElement, len(x))
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = bignumber.NewFromInt64(0).Sub(bignumber.NewFromInt64(0), x[i])
	}
	return out
}

package treatment

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

func TestSTORotation(t *testing.T) {
	t.Parallel()
	in := hypercomplex.NewElement([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	got, err := STO(in)
	if err != nil {
		t.Fatalf("STO() error = %v", err)
	}
	want := hypercomplex.NewElement([]float64{1, 2, 3, 4, 5, 6, 7, 0})
	if !got.ApproxEqual(want, hypercomplex.DefaultTol) {
		t.Errorf("STO() = %v, want %v", got, want)
	}
	if !in.ApproxEqual(hypercomplex.NewElement([]float64{0, 1, 2, 3, 4, 5, 6, 7}), hypercomplex.DefaultTol) {
		t.Error("STO() must not mutate its input")
	}
}

func TestSTODimension(t *testing.T) {
	t.Parallel()
	if _, err := STO(hypercomplex.Zero(16)); !errors.Is(err, hypercomplex.ErrDimensionMismatch) {
		t.Errorf("STO(16-element) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestSTOOrderEight(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	v := randomOctonion(rng)
	cur := v.Clone()
	for i := 0; i < 8; i++ {
		if i > 0 && cur.ApproxEqual(v, hypercomplex.DefaultTol) {
			t.Fatalf("STO^%d is already the identity on a generic vector", i)
		}
		var err error
		cur, err = STO(cur)
		if err != nil {
			t.Fatalf("STO() error = %v", err)
		}
	}
	if !cur.ApproxEqual(v, hypercomplex.DefaultTol) {
		t.Errorf("STO^8 = %v, want the original %v", cur, v)
	}
}

func TestSTONormPreserved(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 10; trial++ {
		v := randomOctonion(rng)
		out, err := STO(v)
		if err != nil {
			t.Fatalf("STO() error = %v", err)
		}
		if math.Abs(out.Norm()-v.Norm()) > hypercomplex.DefaultTol {
			t.Fatalf("trial %d: ||STO(v)|| = %v, ||v|| = %v", trial, out.Norm(), v.Norm())
		}
	}
}

func TestSTOFixedPoints(t *testing.T) {
	t.Parallel()
	constant := hypercomplex.NewElement([]float64{3, 3, 3, 3, 3, 3, 3, 3})
	out, err := STO(constant)
	if err != nil {
		t.Fatalf("STO() error = %v", err)
	}
	if !out.ApproxEqual(constant, hypercomplex.DefaultTol) {
		t.Errorf("constant vector must be a fixed point, got %v", out)
	}

	e0, _ := hypercomplex.Basis(8, 0)
	out, err = STO(e0)
	if err != nil {
		t.Fatalf("STO() error = %v", err)
	}
	if out.ApproxEqual(e0, hypercomplex.DefaultTol) {
		t.Error("non-constant vector must not be a fixed point")
	}
}

func TestASTOSides(t *testing.T) {
	t.Parallel()
	v := hypercomplex.NewElement([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})

	first, err := ASTO(v, First)
	if err != nil {
		t.Fatalf("ASTO(First) error = %v", err)
	}
	wantFirst := hypercomplex.NewElement([]float64{1, 2, 3, 4, 5, 6, 7, 0, 8, 9, 10, 11, 12, 13, 14, 15})
	if !first.ApproxEqual(wantFirst, hypercomplex.DefaultTol) {
		t.Errorf("ASTO(First) = %v, want %v", first, wantFirst)
	}

	second, err := ASTO(v, Second)
	if err != nil {
		t.Fatalf("ASTO(Second) error = %v", err)
	}
	wantSecond := hypercomplex.NewElement([]float64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 8})
	if !second.ApproxEqual(wantSecond, hypercomplex.DefaultTol) {
		t.Errorf("ASTO(Second) = %v, want %v", second, wantSecond)
	}

	if _, err := ASTO(hypercomplex.Zero(8), First); !errors.Is(err, hypercomplex.ErrDimensionMismatch) {
		t.Errorf("ASTO(8-element) error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := ASTO(v, Side(7)); err == nil {
		t.Error("ASTO with unknown side must fail")
	}
}

// ASTO resolves the classic (e1+e10)(e5+e14) zero divisor from either side:
// the treated product has norm 2 = ||a||*||b||.
func TestASTOResolvesCanonicalPair(t *testing.T) {
	t.Parallel()
	alg, _ := hypercomplex.New(16)
	a, _ := hypercomplex.Combine(16, []hypercomplex.Term{{Index: 1, Coeff: 1}, {Index: 10, Coeff: 1}})
	b, _ := hypercomplex.Combine(16, []hypercomplex.Term{{Index: 5, Coeff: 1}, {Index: 14, Coeff: 1}})

	for _, side := range []struct {
		name  string
		mul   func() (hypercomplex.Element, error)
		wants float64
	}{
		{name: "treat first operand", mul: func() (hypercomplex.Element, error) {
			ta, err := ASTO(a, First)
			if err != nil {
				return nil, err
			}
			return alg.Mul(ta, b)
		}, wants: 2.0},
		{name: "treat second operand", mul: func() (hypercomplex.Element, error) {
			tb, err := ASTO(b, First)
			if err != nil {
				return nil, err
			}
			return alg.Mul(a, tb)
		}, wants: 2.0},
	} {
		t.Run(side.name, func(t *testing.T) {
			prod, err := side.mul()
			if err != nil {
				t.Fatalf("treated product error = %v", err)
			}
			if got := prod.Norm(); math.Abs(got-side.wants) > hypercomplex.DefaultTol {
				t.Errorf("treated product norm = %v, want %v", got, side.wants)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	t.Parallel()
	if got := First.String(); got != "first" {
		t.Errorf("First.String() = %q", got)
	}
	if got := Second.String(); got != "second" {
		t.Errorf("Second.String() = %q", got)
	}
	if got := Side(7).String(); got != "side(7)" {
		t.Errorf("Side(7).String() = %q, want %q", got, "side(7)")
	}
}

func randomOctonion(rng *rand.Rand) hypercomplex.Element {
	e := make(hypercomplex.Element, OctonionDim)
	for i := range e {
		e[i] = rng.Float64()*2 - 1
	}
	return e
}

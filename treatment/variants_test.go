package treatment

import (
	"math"
	"testing"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

func TestVariantLookup(t *testing.T) {
	t.Parallel()
	for id := VariantBothHalves; id <= VariantAsymmetricSTO; id++ {
		fn, err := Variant(id)
		if err != nil {
			t.Errorf("Variant(%d) error = %v", id, err)
		}
		if fn == nil {
			t.Errorf("Variant(%d) returned nil implementation", id)
		}
	}
	if _, err := Variant(0); err == nil {
		t.Error("Variant(0) must fail")
	}
	if _, err := Variant(99); err == nil {
		t.Error("Variant(99) must fail")
	}
}

func TestVariantAsymmetricMatchesASTO(t *testing.T) {
	t.Parallel()
	v := hypercomplex.NewElement([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	fn, err := Variant(VariantAsymmetricSTO)
	if err != nil {
		t.Fatalf("Variant() error = %v", err)
	}
	got, err := fn(v)
	if err != nil {
		t.Fatalf("variant error = %v", err)
	}
	want, err := ASTO(v, First)
	if err != nil {
		t.Fatalf("ASTO() error = %v", err)
	}
	if !got.ApproxEqual(want, hypercomplex.DefaultTol) {
		t.Errorf("variant 5 = %v, want ASTO(v, First) = %v", got, want)
	}
}

// Every variant is a signed permutation of components, so all preserve norms.
func TestVariantsPreserveNorm(t *testing.T) {
	t.Parallel()
	v := hypercomplex.NewElement([]float64{1, -2, 3, -4, 5, -6, 7, -8, 9, -10, 11, -12, 13, -14, 15, -16})
	for id, fn := range Catalog {
		out, err := fn(v)
		if err != nil {
			t.Errorf("variant %d error = %v", id, err)
			continue
		}
		if math.Abs(out.Norm()-v.Norm()) > hypercomplex.DefaultTol {
			t.Errorf("variant %d: norm %v, want %v", id, out.Norm(), v.Norm())
		}
	}
}

func TestVariantsRejectWrongDimension(t *testing.T) {
	t.Parallel()
	for id, fn := range Catalog {
		if _, err := fn(hypercomplex.Zero(8)); err == nil {
			t.Errorf("variant %d accepted an 8-component input", id)
		}
	}
}

// The legacy variants do not all resolve the canonical pair; the asymmetric
// STO does.
func TestVariantsOnCanonicalPair(t *testing.T) {
	t.Parallel()
	alg, _ := hypercomplex.New(16)
	a, _ := hypercomplex.Combine(16, []hypercomplex.Term{{Index: 1, Coeff: 1}, {Index: 10, Coeff: 1}})
	b, _ := hypercomplex.Combine(16, []hypercomplex.Term{{Index: 5, Coeff: 1}, {Index: 14, Coeff: 1}})

	fn, err := Variant(VariantAsymmetricSTO)
	if err != nil {
		t.Fatalf("Variant() error = %v", err)
	}
	ta, err := fn(a)
	if err != nil {
		t.Fatalf("variant error = %v", err)
	}
	prod, err := alg.Mul(ta, b)
	if err != nil {
		t.Fatalf("Mul() error = %v", err)
	}
	if prod.IsZero(hypercomplex.DefaultTol) {
		t.Error("asymmetric STO left the canonical product at zero")
	}
}

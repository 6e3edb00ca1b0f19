package treatment

import (
	"fmt"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// VariantFn transforms a sedenion. All variants are pure.
type VariantFn func(hypercomplex.Element) (hypercomplex.Element, error)

// Treatment variant identifiers. Variants 1-4 are earlier iterations of the
// research kept for comparison runs; none of them resolves every canonical
// zero divisor. Variant 5 is the ASTO defined in this package and the
// default everywhere else in the module.
const (
	VariantBothHalves    = 1 // STO applied to both halves
	VariantDoubleRotate  = 2 // STO twice on the first half
	VariantConjugateSTO  = 3 // conjugate, then STO on the first half
	VariantRotateNegate  = 4 // STO on the first half, second half negated
	VariantAsymmetricSTO = 5 // ASTO: STO on the first half only
)

// Catalog maps variant identifiers to implementations, in the manner of an
// opcode table. Unknown identifiers map to nil.
var Catalog = map[int]VariantFn{
	VariantBothHalves:    variantBothHalves,
	VariantDoubleRotate:  variantDoubleRotate,
	VariantConjugateSTO:  variantConjugateSTO,
	VariantRotateNegate:  variantRotateNegate,
	VariantAsymmetricSTO: variantAsymmetric,
}

// Variant returns the implementation for id.
func Variant(id int) (VariantFn, error) {
	fn, ok := Catalog[id]
	if !ok {
		return nil, fmt.Errorf("treatment: unknown variant %d", id)
	}
	return fn, nil
}

func variantBothHalves(v hypercomplex.Element) (hypercomplex.Element, error) {
	t, err := ASTO(v, First)
	if err != nil {
		return nil, err
	}
	return ASTO(t, Second)
}

func variantDoubleRotate(v hypercomplex.Element) (hypercomplex.Element, error) {
	t, err := ASTO(v, First)
	if err != nil {
		return nil, err
	}
	return ASTO(t, First)
}

func variantConjugateSTO(v hypercomplex.Element) (hypercomplex.Element, error) {
	return ASTO(v.Conjugate(), First)
}

func variantRotateNegate(v hypercomplex.Element) (hypercomplex.Element, error) {
	t, err := ASTO(v, First)
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	for i := SedenionDim / 2; i < SedenionDim; i++ {
		out[i] = -out[i]
	}
	return out, nil
}

func variantAsymmetric(v hypercomplex.Element) (hypercomplex.Element, error) {
	return ASTO(v, First)
}

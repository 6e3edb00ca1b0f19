package treatment

import (
	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// Applied records which operand the adaptive strategy ended up treating.
type Applied string

const (
	// AppliedFirst means ASTO(A, First)*B cleared the threshold.
	AppliedFirst Applied = "A"
	// AppliedSecond means A*ASTO(B, First) cleared the threshold.
	AppliedSecond Applied = "B"
	// AppliedNone means both trials stayed below the threshold. The
	// operands are returned unmodified; this outcome is data for the
	// harness, not an error.
	AppliedNone Applied = "FAIL"
)

// Adaptive tries ASTO on A first and falls back to B: at most two trial
// products, no further retries. Returns the treated operands and which side
// was treated; on AppliedNone the inputs come back unchanged.
func Adaptive(alg *hypercomplex.Algebra, a, b hypercomplex.Element, threshold float64) (hypercomplex.Element, hypercomplex.Element, Applied, error) {
	ta, err := ASTO(a, First)
	if err != nil {
		return nil, nil, AppliedNone, err
	}
	prod, err := alg.Mul(ta, b)
	if err != nil {
		return nil, nil, AppliedNone, err
	}
	if prod.Norm() > threshold {
		return ta, b, AppliedFirst, nil
	}

	tb, err := ASTO(b, First)
	if err != nil {
		return nil, nil, AppliedNone, err
	}
	prod, err = alg.Mul(a, tb)
	if err != nil {
		return nil, nil, AppliedNone, err
	}
	if prod.Norm() > threshold {
		return a, tb, AppliedSecond, nil
	}

	return a, b, AppliedNone, nil
}

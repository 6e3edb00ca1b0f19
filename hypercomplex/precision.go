package hypercomplex

// Mode selects the numeric backend for multiplication and norm checks.
type Mode int

const (
	// ModeFloat64 computes with native floating point.
	ModeFloat64 Mode = iota
	// ModeBig computes with arbitrary-precision components (IPSLQ bignumber).
	ModeBig
)

// Precision is the explicit numeric configuration threaded through the
// multiplier and harness. There is no package-level precision state; two
// runs with different Precision values never interfere (the process-global
// big-number precision is initialized once, see BigAlgebra).
type Precision struct {
	Mode   Mode
	Digits int // decimal digits for ModeBig; ignored for ModeFloat64
}

// DefaultPrecision is native float64 arithmetic.
func DefaultPrecision() Precision {
	return Precision{Mode: ModeFloat64}
}

// BigPrecision selects arbitrary-precision arithmetic with the given
// decimal digit count.
func BigPrecision(digits int) Precision {
	return Precision{Mode: ModeBig, Digits: digits}
}

// Eps returns the zero-detection tolerance for the mode: 1e-9 for float64,
// tightened to 1e-15 once big precision carries enough digits to resolve
// it.
func (p Precision) Eps() float64 {
	if p.Mode == ModeBig && p.Digits > 19 {
		// All interchange values are float64; tighter than 1e-15 would
		// reject legitimate round-tripped zero divisors.
		return 1e-15
	}
	return DefaultTol
}

// Bits returns the binary precision implied by the decimal digit count,
// with the minimum bignumber.Init accepts.
func (p Precision) Bits() int {
	// log2(10) ~ 3.33; round up.
	bits := p.Digits*10/3 + 10
	if bits < 64 {
		bits = 64
	}
	return bits
}

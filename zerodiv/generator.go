// Package zerodiv enumerates and persists sedenion zero-divisor pairs.
//
// Candidates have the form (e_i + s1*e_j, e_k + s2*e_l). Enumeration is a
// pure ascending-lexicographic sweep over (i, s1, j, k, s2, l), so two runs
// with the same configuration produce the identical pair list in the
// identical order; test fixtures depend on this.
//
// Two configurations matter in practice. Boundary-crossing enumeration with
// both signs fixed positive reproduces the 84-pair canonical literature
// set; freeing both signs yields 336 pairs, the same zero divisors counted
// with their sign redundancy. Neither count is hardcoded anywhere in this
// package.
package zerodiv

import (
	"fmt"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// SignPolicy controls which sign patterns the generator sweeps.
type SignPolicy int

const (
	// PositiveOnly fixes s1 = s2 = +1 (the canonical-set convention).
	PositiveOnly SignPolicy = iota
	// AllSigns sweeps s1, s2 over {+1, -1}.
	AllSigns
)

// Config parameterizes candidate generation.
type Config struct {
	Dim              int        // algebra dimension; 16 for sedenions
	BoundaryCrossing bool       // restrict index pairs to span the split
	Signs            SignPolicy // sign sweep policy
	Eps              float64    // zero-product tolerance for filtering
}

// DefaultConfig enumerates the canonical configuration: dimension 16,
// boundary-crossing pairs, positive signs, float64 tolerance.
func DefaultConfig() Config {
	return Config{
		Dim:              16,
		BoundaryCrossing: true,
		Signs:            PositiveOnly,
		Eps:              hypercomplex.DefaultTol,
	}
}

// Candidate is one enumerated operand pair before zero-divisor filtering.
type Candidate struct {
	A, B hypercomplex.Element
	// Provenance for reporting: A = e_I + SignJ*e_J, B = e_K + SignL*e_L.
	I, J, K, L   int
	SignJ, SignL float64
}

// Pair is a confirmed zero divisor with provenance metadata. Never mutated
// after creation.
type Pair struct {
	A, B           hypercomplex.Element
	LabelA, LabelB string
	ProductNorm    float64
}

// signsFor expands the policy into the sweep set.
func signsFor(p SignPolicy) []float64 {
	if p == AllSigns {
		return []float64{1, -1}
	}
	return []float64{1}
}

// Generate enumerates all candidates for the configuration in ascending
// lexicographic order of (i, s1, j, k, s2, l). The sweep is finite and
// restartable; it holds no state beyond the returned slice.
func Generate(cfg Config) ([]Candidate, error) {
	if cfg.Dim < 2 || cfg.Dim&(cfg.Dim-1) != 0 {
		return nil, fmt.Errorf("generate: %w (got %d)", hypercomplex.ErrUnsupportedDimension, cfg.Dim)
	}
	half := cfg.Dim / 2
	signs := signsFor(cfg.Signs)

	var out []Candidate
	appendPairIndices := func(i, j, k, l int, s1, s2 float64) error {
		a, err := hypercomplex.Combine(cfg.Dim, []hypercomplex.Term{{Index: i, Coeff: 1}, {Index: j, Coeff: s1}})
		if err != nil {
			return err
		}
		b, err := hypercomplex.Combine(cfg.Dim, []hypercomplex.Term{{Index: k, Coeff: 1}, {Index: l, Coeff: s2}})
		if err != nil {
			return err
		}
		out = append(out, Candidate{A: a, B: b, I: i, J: j, K: k, L: l, SignJ: s1, SignL: s2})
		return nil
	}

	if cfg.BoundaryCrossing {
		// i below the split, j above it; likewise k, l. Every sedenion
		// zero divisor of this form is boundary-crossing, so the
		// restriction loses nothing and cuts the sweep to half*half
		// index pairs per operand.
		for i := 0; i < half; i++ {
			for _, s1 := range signs {
				for j := half; j < cfg.Dim; j++ {
					for k := 0; k < half; k++ {
						for _, s2 := range signs {
							for l := half; l < cfg.Dim; l++ {
								if err := appendPairIndices(i, j, k, l, s1, s2); err != nil {
									return nil, err
								}
							}
						}
					}
				}
			}
		}
		return out, nil
	}

	for i := 0; i < cfg.Dim; i++ {
		for _, s1 := range signs {
			for j := 0; j < cfg.Dim; j++ {
				if j == i {
					continue
				}
				for k := 0; k < cfg.Dim; k++ {
					for _, s2 := range signs {
						for l := 0; l < cfg.Dim; l++ {
							if l == k {
								continue
							}
							if err := appendPairIndices(i, j, k, l, s1, s2); err != nil {
								return nil, err
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}

// Filter keeps the candidates whose product norm is below eps, attaching
// labels and the measured norm. Ordering follows the input.
func Filter(candidates []Candidate, alg *hypercomplex.Algebra, eps float64) ([]Pair, error) {
	var out []Pair
	for _, c := range candidates {
		prod, err := alg.Mul(c.A, c.B)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		n := prod.Norm()
		if n >= eps {
			continue
		}
		out = append(out, Pair{
			A:           c.A,
			B:           c.B,
			LabelA:      hypercomplex.Label(c.A),
			LabelB:      hypercomplex.Label(c.B),
			ProductNorm: n,
		})
	}
	return out, nil
}

// Find runs Generate and Filter in one step.
func Find(cfg Config, alg *hypercomplex.Algebra) ([]Pair, error) {
	candidates, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return Filter(candidates, alg, cfg.Eps)
}

// Package dvmathextensions explores zero divisors of the 16-dimensional
// sedenion algebra and their treatment by ASTO, the asymmetric singularity
// treatment operator.
//
// Sedenions arise from octonions by one Cayley-Dickson doubling step and
// are the first algebra in the hierarchy where non-zero elements can
// multiply to zero. This module implements the construction, searches for
// those zero-divisor pairs, and validates that rotating one octonion half
// of an operand restores a non-zero product.
//
// # Architecture Overview
//
// The computational core consists of four packages:
//
//   - hypercomplex: fixed-dimension real vectors and the recursive
//     Cayley-Dickson multiplication rule (reals through sedenions), with a
//     float64 backend and an arbitrary-precision mirror
//   - treatment: the STO cyclic rotation, its asymmetric one-half
//     application ASTO, the adaptive A-then-B strategy, and the legacy
//     variant catalog
//   - zerodiv: deterministic candidate enumeration, zero-divisor
//     filtering, the canonical 84-pair set, and the JSON interchange codec
//   - harness: parallel validation runs (exhaustive, seeded-sampled, and
//     externally sampled), success accounting under adaptive or
//     strict-both criteria, and report export
//
// # Basic Usage
//
//	alg, err := hypercomplex.New(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pairs, err := zerodiv.Canonical(alg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := harness.DefaultOptions()
//	opts.Mode = harness.ModeStrictBoth
//	report, err := harness.RunExhaustive(context.Background(), alg, pairs, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d/%d pairs treated\n", report.Summary.Successful, report.Summary.TotalTests)
//
// # Numerical Notes
//
// Norm composition ||xy|| = ||x||*||y|| holds through dimension 8 and is
// lost at dimension 16; every tolerance in this module is explicit
// configuration, scaled to the selected precision backend, because the
// zero/non-zero distinction is the whole subject.
package dvmathextensions

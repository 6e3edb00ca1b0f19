package harness

import (
	"encoding/json"
	"math"
)

// Summary aggregates a run. Norm statistics are computed over the binding
// treated norm of each judged pair: the successful side's norm in adaptive
// mode, the smaller (limiting) of the two norms in strict mode.
type Summary struct {
	TotalTests            int     `json:"totalTests"`
	Successful            int     `json:"successful"`
	Failed                int     `json:"failed"`
	SkippedNotZeroDivisor int     `json:"skippedNotZeroDivisor,omitempty"`
	SuccessRate           float64 `json:"successRate"`
	MeanNorm              float64 `json:"meanNorm"`
	StddevNorm            float64 `json:"stddevNorm"`
	MinNorm               float64 `json:"minNorm"`
	MaxNorm               float64 `json:"maxNorm"`
}

// Summarize folds per-pair results into a Summary. Skipped (not-a-zero-
// divisor) entries count toward TotalTests but never toward Successful, so
// a sampler feeding invalid pairs can never produce a 100% claim.
func Summarize(results []Result) Summary {
	s := Summary{TotalTests: len(results)}

	var norms []float64
	for _, r := range results {
		if r.NotZeroDivisor {
			s.SkippedNotZeroDivisor++
			continue
		}
		if r.Success {
			s.Successful++
		} else {
			s.Failed++
		}
		norms = append(norms, bindingNorm(r))
	}
	if s.TotalTests > 0 {
		s.SuccessRate = float64(s.Successful) / float64(s.TotalTests)
	}
	if len(norms) == 0 {
		return s
	}

	s.MinNorm = norms[0]
	s.MaxNorm = norms[0]
	var sum float64
	for _, n := range norms {
		sum += n
		if n < s.MinNorm {
			s.MinNorm = n
		}
		if n > s.MaxNorm {
			s.MaxNorm = n
		}
	}
	s.MeanNorm = sum / float64(len(norms))

	var varSum float64
	for _, n := range norms {
		d := n - s.MeanNorm
		varSum += d * d
	}
	s.StddevNorm = math.Sqrt(varSum / float64(len(norms)))
	return s
}

// bindingNorm picks the treated norm the success judgment hinged on.
func bindingNorm(r Result) float64 {
	switch {
	case r.FirstOK && !r.SecondOK:
		return r.TreatedFirstNorm
	case r.SecondOK && !r.FirstOK:
		return r.TreatedSecondNorm
	default:
		// Both sides agree (both ok, or both failed): report the
		// limiting direction.
		return math.Min(r.TreatedFirstNorm, r.TreatedSecondNorm)
	}
}

// Export serializes the report for downstream rendering tools.
func (r *Report) Export() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ImportReport parses a previously exported report.
func ImportReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

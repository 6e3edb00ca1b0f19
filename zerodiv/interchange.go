package zerodiv

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

// Interchange formats. Candidate sets travel between the generator, the
// harness and external tools as a single JSON object carrying run metadata
// and the full component vectors; values must round-trip exactly.

// PairRecord is one persisted zero-divisor pair.
type PairRecord struct {
	A      []float64 `json:"A"`
	B      []float64 `json:"B"`
	LabelA string    `json:"labelA"`
	LabelB string    `json:"labelB"`
}

// SetDocument is the top-level interchange object.
type SetDocument struct {
	TotalCombinations int          `json:"totalCombinations"`
	ZeroDivisorsFound int          `json:"zeroDivisorsFound"`
	GenerationDate    string       `json:"generationDate"`
	Pairs             []PairRecord `json:"pairs"`
}

// Export serializes pairs with run metadata. totalCombinations is the size
// of the candidate sweep the pairs were filtered from; callers that import
// third-party sets may pass the count their source reports.
func Export(pairs []Pair, totalCombinations int, now time.Time) ([]byte, error) {
	doc := SetDocument{
		TotalCombinations: totalCombinations,
		ZeroDivisorsFound: len(pairs),
		GenerationDate:    now.UTC().Format(time.RFC3339),
		Pairs:             make([]PairRecord, 0, len(pairs)),
	}
	for _, p := range pairs {
		doc.Pairs = append(doc.Pairs, PairRecord{
			A:      p.A,
			B:      p.B,
			LabelA: p.LabelA,
			LabelB: p.LabelB,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses an interchange document and rebuilds the pair set. The
// declared zeroDivisorsFound must match the record count, and every vector
// must have a consistent dimension; corrupt documents fail loudly rather
// than feeding a truncated set into a validation run.
func Import(data []byte, alg *hypercomplex.Algebra) ([]Pair, error) {
	var doc SetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	if doc.ZeroDivisorsFound != len(doc.Pairs) {
		return nil, fmt.Errorf("import: declared %d pairs but document carries %d",
			doc.ZeroDivisorsFound, len(doc.Pairs))
	}
	out := make([]Pair, 0, len(doc.Pairs))
	for i, r := range doc.Pairs {
		if len(r.A) != alg.Dim() || len(r.B) != alg.Dim() {
			return nil, fmt.Errorf("import: pair %d: %w (want %d components, got %d and %d)",
				i, hypercomplex.ErrDimensionMismatch, alg.Dim(), len(r.A), len(r.B))
		}
		a := hypercomplex.NewElement(r.A)
		b := hypercomplex.NewElement(r.B)
		prod, err := alg.Mul(a, b)
		if err != nil {
			return nil, fmt.Errorf("import: pair %d: %w", i, err)
		}
		labelA, labelB := r.LabelA, r.LabelB
		if labelA == "" {
			labelA = hypercomplex.Label(a)
		}
		if labelB == "" {
			labelB = hypercomplex.Label(b)
		}
		out = append(out, Pair{
			A:           a,
			B:           b,
			LabelA:      labelA,
			LabelB:      labelB,
			ProductNorm: prod.Norm(),
		})
	}
	return out, nil
}

package zerodiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IMalaspina/dvmath-extensions/hypercomplex"
)

func TestCanonical(t *testing.T) {
	t.Parallel()
	alg, err := hypercomplex.New(16)
	require.NoError(t, err)

	pairs, err := Canonical(alg)
	require.NoError(t, err)
	assert.Len(t, pairs, CanonicalCount)
}

func TestCanonicalRequiresSedenions(t *testing.T) {
	t.Parallel()
	alg, err := hypercomplex.New(8)
	require.NoError(t, err)

	_, err = Canonical(alg)
	assert.ErrorIs(t, err, hypercomplex.ErrDimensionMismatch)
}

func TestCanonicalPair(t *testing.T) {
	t.Parallel()
	alg, err := hypercomplex.New(16)
	require.NoError(t, err)

	p, err := CanonicalPair(alg, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, p.LabelA)
	assert.Less(t, p.ProductNorm, hypercomplex.DefaultTol)

	_, err = CanonicalPair(alg, -1)
	assert.ErrorIs(t, err, hypercomplex.ErrIndexOutOfRange)
	_, err = CanonicalPair(alg, CanonicalCount)
	assert.ErrorIs(t, err, hypercomplex.ErrIndexOutOfRange)
}

func TestFormatPair(t *testing.T) {
	t.Parallel()
	p := Pair{LabelA: "e1 + e10", LabelB: "e5 + e14"}
	assert.Equal(t, "(e1 + e10) x (e5 + e14)", FormatPair(p))
}

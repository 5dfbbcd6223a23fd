package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveQuadraticDistinctRoots(t *testing.T) {
	roots := SolveQuadratic(1, -3, 2) // (x-1)(x-2)
	require.Len(t, roots, 2)
	assert.InDelta(t, 1, roots[0], 1e-12)
	assert.InDelta(t, 2, roots[1], 1e-12)
}

func TestSolveQuadraticLinearFallback(t *testing.T) {
	roots := SolveQuadratic(0, 2, -4)
	require.Len(t, roots, 1)
	assert.InDelta(t, 2, roots[0], 1e-12)

	assert.Empty(t, SolveQuadratic(0, 0, 1))
}

func TestSolveQuadraticDoubleRoot(t *testing.T) {
	roots := SolveQuadratic(1, -4, 4) // (x-2)^2
	require.Len(t, roots, 2)
	assert.InDelta(t, 2, roots[0], 1e-12)
	assert.InDelta(t, 2, roots[1], 1e-12)
}

func TestSolveQuadraticNoRealRoot(t *testing.T) {
	assert.Empty(t, SolveQuadratic(1, 0, 1))
}

func TestSolveQuadraticCancellation(t *testing.T) {
	// Small root next to a huge one loses all precision in the naive
	// formula.
	roots := SolveQuadratic(1, -1e8, 1)
	require.Len(t, roots, 2)
	assert.InDelta(t, 1e-8, roots[0], 1e-16)
	assert.InDelta(t, 1e8, roots[1], 1)
}

func TestSolveCubicThreeRoots(t *testing.T) {
	roots := SolveCubic(1, -6, 11, -6) // (x-1)(x-2)(x-3)
	require.Len(t, roots, 3)
	assert.InDelta(t, 1, roots[0], 1e-9)
	assert.InDelta(t, 2, roots[1], 1e-9)
	assert.InDelta(t, 3, roots[2], 1e-9)
}

func TestSolveCubicScaledLeadingCoefficient(t *testing.T) {
	roots := SolveCubic(2, -12, 22, -12)
	require.Len(t, roots, 3)
	assert.InDelta(t, 1, roots[0], 1e-9)
	assert.InDelta(t, 3, roots[2], 1e-9)
}

func TestSolveCubicSingleRealRoot(t *testing.T) {
	roots := SolveCubic(1, 0, -1, -6) // (x-2)(x^2+2x+3)
	require.Len(t, roots, 1)
	assert.InDelta(t, 2, roots[0], 1e-9)
}

func TestSolveCubicTripleRoot(t *testing.T) {
	roots := SolveCubic(1, -3, 3, -1) // (x-1)^3
	require.NotEmpty(t, roots)
	for _, r := range roots {
		assert.InDelta(t, 1, r, 1e-5)
	}
}

func TestSolveCubicDegenerateLeading(t *testing.T) {
	// Leading coefficient below the epsilon degrades to the quadratic.
	roots := SolveCubic(1e-15, 1, -3, 2)
	require.Len(t, roots, 2)
	assert.InDelta(t, 1, roots[0], 1e-9)
	assert.InDelta(t, 2, roots[1], 1e-9)
}

func TestNonNegativeRootsFiltering(t *testing.T) {
	out := nonNegativeRoots([]float64{-2, -1e-15, 0.5})
	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0], "near-zero roots clamp to exactly zero")
	assert.Equal(t, 0.5, out[1])

	r, ok := smallestNonNegativeRoot([]float64{-3, -2})
	assert.False(t, ok, "all-negative roots mean the phase is not needed")
	assert.Zero(t, r)

	r, ok = smallestNonNegativeRoot([]float64{-1, 0.25, 4})
	assert.True(t, ok)
	assert.Equal(t, 0.25, r)
}

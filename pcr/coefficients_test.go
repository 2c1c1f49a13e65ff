// SPDX-License-Identifier: MIT

package pcr_test

import (
	"math"
	"testing"

	"github.com/gespel/KPP2Projekt/pcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleQuadruple extracts the (a, b, c, y) diagonals of the worked 4×4
// system: a=[0,8,2,4], b=[4,4,8,8], c=[3,9,4,0], y=[1,2,3,4].
func sampleQuadruple(t *testing.T) (a, b, c, y *pcr.Diagonal) {
	t.Helper()

	mtx, rhs := sampleMatrix()
	a, b, c, y = pcr.NewSystemForTest(mtx, rhs)

	require.Equal(t, []float64{0, 8, 2, 4}, a.Values(), "sub-diagonal with leading padding")
	require.Equal(t, []float64{4, 4, 8, 8}, b.Values(), "main diagonal")
	require.Equal(t, []float64{3, 9, 4, 0}, c.Values(), "super-diagonal with trailing padding")
	require.Equal(t, []float64{1, 2, 3, 4}, y.Values(), "right-hand side")

	return a, b, c, y
}

// TestStride verifies the level→stride mapping 2^(level−1).
func TestStride(t *testing.T) {
	assert.Equal(t, 1, pcr.StrideForTest(1))
	assert.Equal(t, 2, pcr.StrideForTest(2))
	assert.Equal(t, 4, pcr.StrideForTest(3))
}

// TestAlphaGamma_Level1 checks the decoupling multipliers of the worked
// system at level 1 against hand-computed values.
func TestAlphaGamma_Level1(t *testing.T) {
	a, b, c, _ := sampleQuadruple(t)

	// Row 1: denomAlpha = b.Get(-1) = 1 (center boundary), denomGamma = b.Get(1) = 4.
	alpha, gamma := pcr.AlphaGammaForTest(a, b, c, 1, 1, pcr.DefaultEpsilon)
	assert.InDelta(t, 0.0, alpha, 1e-15, "row 1 alpha: -a[0]/1 = 0")
	assert.InDelta(t, -0.75, gamma, 1e-15, "row 1 gamma: -c[0]/b[1] = -3/4")

	// Row 2: denomAlpha = b.Get(0) = 4, denomGamma = b.Get(2) = 8.
	alpha, gamma = pcr.AlphaGammaForTest(a, b, c, 2, 1, pcr.DefaultEpsilon)
	assert.InDelta(t, -2.0, alpha, 1e-15, "row 2 alpha: -8/4")
	assert.InDelta(t, -1.125, gamma, 1e-15, "row 2 gamma: -9/8")
}

// TestAlphaGamma_EpsilonGuard verifies that an exactly-zero pivot is
// perturbed instead of producing ±Inf.
func TestAlphaGamma_EpsilonGuard(t *testing.T) {
	a := pcr.NewDiagonal([]float64{0, 8}, pcr.RoleLeft)
	b := pcr.NewDiagonal([]float64{0, 4}, pcr.RoleCenter)
	c := pcr.NewDiagonal([]float64{3, 0}, pcr.RoleRight)

	// Row 2, level 1: denomAlpha = b.Get(0) = 0 → perturbed to ε.
	alpha, gamma := pcr.AlphaGammaForTest(&a, &b, &c, 2, 1, pcr.DefaultEpsilon)

	assert.False(t, math.IsInf(alpha, 0) || math.IsNaN(alpha), "alpha must stay finite")
	assert.InDelta(t, -8/pcr.DefaultEpsilon, alpha, 1e-15*8/pcr.DefaultEpsilon, "alpha = -a[1]/ε")
	assert.InDelta(t, 0.0, gamma, 1e-15, "gamma untouched by the guard")
}

// TestDecoupleRow_Level1 checks the full per-row linear combination for
// row 2 of the worked system at level 1 against hand-computed values:
//
//	a' = α·a[0]        = -2·0        = 0
//	c' = γ·c[2]        = -1.125·4    = -4.5
//	b' = b[1]+α·c[0]+γ·a[2] = 4-6-2.25   = -4.25
//	y' = y[1]+α·y[0]+γ·y[2] = 2-2-3.375  = -3.375
func TestDecoupleRow_Level1(t *testing.T) {
	a, b, c, y := sampleQuadruple(t)

	aNew, bNew, cNew, yNew := pcr.DecoupleRowForTest(a, b, c, y, 2, 1, pcr.DefaultEpsilon)

	assert.InDelta(t, 0.0, aNew, 1e-12, "a'")
	assert.InDelta(t, -4.25, bNew, 1e-12, "b'")
	assert.InDelta(t, -4.5, cNew, 1e-12, "c'")
	assert.InDelta(t, -3.375, yNew, 1e-12, "y'")
}

// TestDecoupleRow_PureFunction verifies the kernels leave their inputs
// untouched.
func TestDecoupleRow_PureFunction(t *testing.T) {
	a, b, c, y := sampleQuadruple(t)

	for row := 1; row <= 4; row++ {
		pcr.DecoupleRowForTest(a, b, c, y, row, 1, pcr.DefaultEpsilon)
	}

	assert.Equal(t, []float64{0, 8, 2, 4}, a.Values(), "a unchanged")
	assert.Equal(t, []float64{4, 4, 8, 8}, b.Values(), "b unchanged")
	assert.Equal(t, []float64{3, 9, 4, 0}, c.Values(), "c unchanged")
	assert.Equal(t, []float64{1, 2, 3, 4}, y.Values(), "y unchanged")
}

// SPDX-License-Identifier: MIT

package pcr

// Test bridge for white-box verification of the unexported reduction
// kernels from pcr_test, without widening the production API.

// AlphaGammaForTest exposes alphaGamma.
var AlphaGammaForTest = alphaGamma

// DecoupleRowForTest exposes decoupleRow.
var DecoupleRowForTest = decoupleRow

// StrideForTest exposes stride.
var StrideForTest = stride

// NewSystemForTest exposes newSystem and the quadruple it builds.
func NewSystemForTest(mtx [][]float64, rhs []float64) (a, b, c, y *Diagonal) {
	s := newSystem(mtx, rhs)

	return &s.a, &s.b, &s.c, &s.y
}

// ReduceLevelForTest runs one reduction pass over the given quadruple.
func ReduceLevelForTest(a, b, c, y *Diagonal, level, workers int, eps float64) {
	s := &system{a: *a, b: *b, c: *c, y: *y}
	s.reduceLevel(level, workers, eps)
	*a, *b, *c, *y = s.a, s.b, s.c, s.y
}

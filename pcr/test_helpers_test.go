// SPDX-License-Identifier: MIT

package pcr_test

import (
	"math/rand"
)

// sampleMatrix is the worked 4×4 system used across the test files.
func sampleMatrix() ([][]float64, []float64) {
	mtx := [][]float64{
		{4, 3, 0, 0},
		{8, 4, 9, 0},
		{0, 2, 8, 4},
		{0, 0, 4, 8},
	}
	rhs := []float64{1, 2, 3, 4}

	return mtx, rhs
}

// dominantSystem builds a strictly diagonally dominant tridiagonal n×n
// system with pseudo-random bands and right-hand side. Deterministic for
// a given seed.
func dominantSystem(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))

	mtx := make([][]float64, n)
	for i := range mtx {
		mtx[i] = make([]float64, n)
	}
	rhs := make([]float64, n)

	for i := 0; i < n; i++ {
		lower, upper := 0.0, 0.0
		if i > 0 {
			lower = 2*rng.Float64() - 1
			mtx[i][i-1] = lower
		}
		if i < n-1 {
			upper = 2*rng.Float64() - 1
			mtx[i][i+1] = upper
		}
		// |b| > |a| + |c| guarantees a well-conditioned system.
		mtx[i][i] = 3 + absFloat(lower) + absFloat(upper)
		rhs[i] = 10 * (2*rng.Float64() - 1)
	}

	return mtx, rhs
}

// matVec computes A·x for a dense square A.
func matVec(mtx [][]float64, x []float64) []float64 {
	out := make([]float64, len(mtx))
	for i := range mtx {
		for j := range mtx[i] {
			out[i] += mtx[i][j] * x[j]
		}
	}

	return out
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

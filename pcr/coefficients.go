// SPDX-License-Identifier: MIT

// Package pcr: per-row reduction kernels.
// alphaGamma and decoupleRow are pure functions over the previous level's
// diagonals; they never write shared state, which is what makes the row
// loop in reduce.go embarrassingly parallel.
package pcr

// stride returns the neighbor distance eliminated at a 1-based level:
// 2^(level−1).
func stride(level int) int {
	return 1 << (level - 1)
}

// alphaGamma computes the decoupling multipliers for one row at the given
// level (both 1-based, matching the algorithm's notation in Hockney &
// Jesshope, p. 477). alpha cancels the coupling to the row at distance
// −stride, gamma the coupling at +stride.
//
// A denominator that is exactly zero is perturbed by eps rather than
// reported: an intermediate pivot can legitimately become zero for some
// problem classes, and the perturbation keeps the reduction finite.
func alphaGamma(a, b, c *Diagonal, row, level int, eps float64) (alpha, gamma float64) {
	s := stride(level)

	denomAlpha := b.Get(row - s - 1)
	denomGamma := b.Get(row + s - 1)
	if denomAlpha == 0 {
		denomAlpha += eps
	}
	if denomGamma == 0 {
		denomGamma += eps
	}

	alpha = -a.Get(row-1) / denomAlpha
	gamma = -c.Get(row-1) / denomGamma

	return alpha, gamma
}

// decoupleRow produces the next-level (a', b', c', y') entries for one
// row: a symmetric linear combination of the row with its two
// stride-distant neighbors that eliminates the coupling to both. All
// reads go through Diagonal.Get against the previous level's buffers,
// never against freshly computed values.
func decoupleRow(a, b, c, y *Diagonal, row, level int, eps float64) (aNew, bNew, cNew, yNew float64) {
	alpha, gamma := alphaGamma(a, b, c, row, level, eps)
	s := stride(level)

	aNew = alpha * a.Get(row-s-1)
	cNew = gamma * c.Get(row+s-1)
	bNew = b.Get(row-1) + alpha*c.Get(row-s-1) + gamma*a.Get(row+s-1)
	yNew = y.Get(row-1) + alpha*y.Get(row-s-1) + gamma*y.Get(row+s-1)

	return aNew, bNew, cNew, yNew
}

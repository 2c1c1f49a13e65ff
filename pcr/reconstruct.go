// SPDX-License-Identifier: MIT

package pcr

// Reconstruct rebuilds the dense matrix implied by the three diagonals
// after `level` reduction passes. It exists for didactic inspection
// only — watching the side bands migrate outward by 2^level per pass —
// and plays no part in solving.
//
// Placement mirrors the reduction: after level passes the remaining
// coupling sits at distance 2^level from the main diagonal, so the
// sub-diagonal values land 2^level rows below it and the super-diagonal
// values 2^level columns right of it. level 0 reproduces the original
// tridiagonal layout. Bands that have been pushed entirely off the
// matrix simply do not appear.
func Reconstruct(a, b, c *Diagonal, level int) [][]float64 {
	n := b.Len()
	mtx := make([][]float64, n)
	for i := range mtx {
		mtx[i] = make([]float64, n)
	}

	offset := 1 << level

	for i := 0; i < n; i++ {
		mtx[i][i] = b.Get(i)
	}

	// Sub-diagonal: the leading `offset` entries carry boundary padding
	// once the band has moved that far down; skip them.
	lower := a.Values()
	if offset < n {
		lower = lower[offset:]
	}
	for i := 0; i < n-1 && i < len(lower); i++ {
		row := i + offset
		if row >= n {
			break
		}
		mtx[row][i] = lower[i]
	}

	// Super-diagonal: the trailing entry is boundary padding.
	upper := c.Values()
	if len(upper) > 0 {
		upper = upper[:len(upper)-1]
	}
	for i := 0; i < len(upper); i++ {
		col := i + offset
		if col >= n {
			break
		}
		mtx[i][col] = upper[i]
	}

	return mtx
}

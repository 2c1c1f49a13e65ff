package tridiag

import (
	"errors"
	"math"
)

// Sentinel errors for tridiag operations.
var (
	// ErrShape indicates inconsistent band or right-hand-side lengths.
	ErrShape = errors.New("tridiag: band lengths must be n-1, n, n-1 with len(y) == n")
	// ErrNonSquare indicates the dense input matrix is not square.
	ErrNonSquare = errors.New("tridiag: matrix must be square")
	// ErrSingular indicates elimination hit an exactly-zero pivot.
	ErrSingular = errors.New("tridiag: matrix is singular")
)

// Solve computes x with A·x = y where A is the n×n tridiagonal matrix
// whose sub-, main and super-diagonals are dl (length n−1), d (length n)
// and du (length n−1). Gaussian elimination with partial pivoting: at
// each column the larger of the diagonal and sub-diagonal entry pivots,
// with the row interchange introducing a second super-diagonal that is
// carried in the dl workspace. Inputs are copied, never mutated.
//
// Returns ErrShape on inconsistent lengths and ErrSingular when a pivot
// is exactly zero.
func Solve(dl, d, du, y []float64) ([]float64, error) {
	n := len(d)
	if n == 0 || len(dl) != n-1 || len(du) != n-1 || len(y) != n {
		return nil, ErrShape
	}

	// Working copies; dl doubles as storage for the fill-in second
	// super-diagonal created by row interchanges.
	dl = append([]float64(nil), dl...)
	d = append([]float64(nil), d...)
	du = append([]float64(nil), du...)
	x := append([]float64(nil), y...)

	for i := 0; i < n-1; i++ {
		if math.Abs(d[i]) >= math.Abs(dl[i]) {
			// No row interchange required.
			if d[i] == 0 {
				return nil, ErrSingular
			}
			fact := dl[i] / d[i]
			d[i+1] -= fact * du[i]
			x[i+1] -= fact * x[i]
			dl[i] = 0
		} else {
			// Interchange rows i and i+1.
			fact := d[i] / dl[i]
			d[i] = dl[i]
			tmp := d[i+1]
			d[i+1] = du[i] - fact*tmp
			du[i] = tmp
			if i+1 < n-1 {
				dl[i] = du[i+1]
				du[i+1] = -fact * dl[i]
			}
			x[i], x[i+1] = x[i+1], x[i]-fact*x[i+1]
		}
	}
	if d[n-1] == 0 {
		return nil, ErrSingular
	}

	// Back substitution with the upper triangle left by elimination.
	x[n-1] /= d[n-1]
	if n > 1 {
		x[n-2] = (x[n-2] - du[n-2]*x[n-1]) / d[n-2]
	}
	for i := n - 3; i >= 0; i-- {
		x[i] = (x[i] - du[i]*x[i+1] - dl[i]*x[i+2]) / d[i]
	}

	return x, nil
}

// SolveMatrix extracts the three bands of the dense square matrix A and
// solves via Solve. Entries outside the bands are ignored. Returns
// ErrNonSquare for a non-square (or ragged) A and ErrShape when len(y)
// differs from A's side.
func SolveMatrix(mtx [][]float64, y []float64) ([]float64, error) {
	n := len(mtx)
	if n == 0 {
		return nil, ErrShape
	}
	for i := range mtx {
		if len(mtx[i]) != n {
			return nil, ErrNonSquare
		}
	}
	if len(y) != n {
		return nil, ErrShape
	}

	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	for i := 0; i < n; i++ {
		d[i] = mtx[i][i]
		if i > 0 {
			dl[i-1] = mtx[i][i-1]
		}
		if i < n-1 {
			du[i] = mtx[i][i+1]
		}
	}

	return Solve(dl, d, du, y)
}

// SPDX-License-Identifier: MIT

// Package pcr: the level update. One reduceLevel call is one full
// reduction pass; the level sequence lives in solver.go.
package pcr

import "golang.org/x/sync/errgroup"

// serialCutoff is the row count below which spawning goroutines costs
// more than it saves; such levels run on the calling goroutine.
const serialCutoff = 256

// system is the active quadruple of diagonals: the current (partially or
// fully reduced) tridiagonal system. All four have identical length N.
type system struct {
	a, b, c, y Diagonal
}

// newSystem extracts the three bands of A and pairs them with y:
// a left-padded with a leading 0 (RoleLeft), b as-is (RoleCenter),
// c right-padded with a trailing 0 (RoleRight), y copied (RoleNone).
// A must already be validated as square with side n == len(y).
func newSystem(mtx [][]float64, rhs []float64) *system {
	n := len(mtx)

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	y := make([]float64, n)

	for i := 0; i < n; i++ {
		b[i] = mtx[i][i]
		if i > 0 {
			a[i] = mtx[i][i-1]
		}
		if i < n-1 {
			c[i] = mtx[i][i+1]
		}
	}
	copy(y, rhs)

	return &system{
		a: NewDiagonal(a, RoleLeft),
		b: NewDiagonal(b, RoleCenter),
		c: NewDiagonal(c, RoleRight),
		y: NewDiagonal(y, RoleNone),
	}
}

// reduceLevel applies one full reduction pass for the given 1-based
// level: every row 1..N is decoupled from its neighbors at distance
// 2^(level−1), independently and in parallel across workers.
//
// Correctness discipline (the only one the algorithm has): every row
// reads exclusively the previous level's buffers, and all four fresh
// buffers are installed only after the barrier, once the last row has
// been computed. Replacing a diagonal while rows are still running would
// let later rows observe already-updated neighbor values.
func (s *system) reduceLevel(level, workers int, eps float64) {
	n := s.b.Len()

	aNew := make([]float64, n)
	bNew := make([]float64, n)
	cNew := make([]float64, n)
	yNew := make([]float64, n)

	if workers <= 1 || n < serialCutoff {
		s.decoupleRows(1, n, level, eps, aNew, bNew, cNew, yNew)
	} else {
		var g errgroup.Group
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			first, last := lo+1, min(lo+chunk, n)
			g.Go(func() error {
				s.decoupleRows(first, last, level, eps, aNew, bNew, cNew, yNew)

				return nil
			})
		}
		_ = g.Wait() // row workers cannot fail; Wait is the level barrier
	}

	s.a.Replace(aNew)
	s.b.Replace(bNew)
	s.c.Replace(cNew)
	s.y.Replace(yNew)
}

// decoupleRows computes rows first..last (1-based, inclusive) into the
// output buffers. Each row writes only its own slot, so concurrent
// chunks never touch the same index.
func (s *system) decoupleRows(first, last, level int, eps float64, aNew, bNew, cNew, yNew []float64) {
	for row := first; row <= last; row++ {
		aNew[row-1], bNew[row-1], cNew[row-1], yNew[row-1] =
			decoupleRow(&s.a, &s.b, &s.c, &s.y, row, level, eps)
	}
}

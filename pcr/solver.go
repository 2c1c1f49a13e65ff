// SPDX-License-Identifier: MIT

package pcr

import (
	"math/bits"
	"runtime"
)

// TotalLevels returns the number of reduction passes for a system of
// n equations: ceil(log2 n), computed in integer arithmetic. n ≤ 1
// needs no pass at all.
func TotalLevels(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// Solve computes x with A·x ≈ y for a tridiagonal A using Parallel
// Cyclic Reduction: TotalLevels(N) passes, each decoupling every
// equation from its neighbors at doubling distance, then one elementwise
// division y/b on the fully decoupled system.
//
// A must be square with side N ≥ 1 and len(y) == N; violations return
// ErrEmptySystem, ErrNonSquare or ErrDimensionMismatch. Entries outside
// the three central bands are ignored unless opts.ValidateTridiagonal is
// set, in which case they fail with ErrNotTridiagonal. A nil opts means
// DefaultOptions(). Inputs are never mutated.
//
// An exactly-zero pivot arising during reduction is perturbed by
// opts.Epsilon rather than reported. The terminal division is NOT
// guarded: a zero pivot that survives every level yields ±Inf/NaN in x,
// which is deliberate — a singular system should look singular.
//
// The result is deterministic: identical inputs produce bit-identical
// output regardless of Workers.
//
// Example:
//
//	x, err := pcr.Solve(A, y, nil)
func Solve(mtx [][]float64, rhs []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	n := len(mtx)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	for i := range mtx {
		if len(mtx[i]) != n {
			return nil, ErrNonSquare
		}
	}
	if len(rhs) != n {
		return nil, ErrDimensionMismatch
	}
	if o.ValidateTridiagonal {
		if err := validateBands(mtx); err != nil {
			return nil, err
		}
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sys := newSystem(mtx, rhs)
	total := TotalLevels(n)
	for level := 1; level <= total; level++ {
		sys.reduceLevel(level, workers, o.Epsilon)
	}

	// Fully decoupled: every equation is b[i]*x[i] = y[i].
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = sys.y.Get(i) / sys.b.Get(i)
	}

	return x, nil
}

// validateBands rejects nonzero entries outside the tridiagonal bands.
func validateBands(mtx [][]float64) error {
	for i := range mtx {
		for j := range mtx[i] {
			if (j < i-1 || j > i+1) && mtx[i][j] != 0 {
				return ErrNotTridiagonal
			}
		}
	}

	return nil
}

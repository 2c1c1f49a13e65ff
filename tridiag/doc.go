// Package tridiag provides a direct solver for tridiagonal linear
// systems: Gaussian elimination with partial pivoting, the LAPACK gtsv
// scheme. O(N) time, numerically robust, strictly serial.
//
// Inside this module it is the reference solver: the pcr package's tests
// and the example drivers cross-check Parallel Cyclic Reduction results
// against it. It is equally usable on its own whenever a plain direct
// solve is all that is needed.
//
// ⚙️ Usage:
//
//	import "github.com/gespel/KPP2Projekt/tridiag"
//
//	// bands: dl (sub), d (main), du (super)
//	x, err := tridiag.Solve(dl, d, du, y)
//
//	// or from a dense matrix
//	x, err := tridiag.SolveMatrix(A, y)
package tridiag

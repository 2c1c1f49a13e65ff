// Package KPP2Projekt solves tridiagonal linear systems A·x = y, built
// around Parallel Cyclic Reduction — the log₂ N-pass, row-parallel
// elimination scheme from Hockney & Jesshope's "Parallel Computers 2".
//
// 🚀 What is in here?
//
//	Two solvers for the same job, one parallel and one serial:
//		• pcr/     — Parallel Cyclic Reduction: boundary-aware diagonals,
//		  per-row decoupling coefficients, bulk-synchronous level updates
//		• tridiag/ — direct Gaussian elimination with partial pivoting
//		  (the LAPACK gtsv scheme), used as the reference cross-check
//
// ✨ Why PCR?
//
//   - Fixed depth – ceil(log₂ N) passes, no data-dependent control flow
//   - Row-parallel – within a pass all N row updates are independent
//   - Deterministic – bit-identical results for identical inputs,
//     regardless of how many workers process the rows
//
// Quick ASCII picture of one reduction pass (stride 1):
//
//	row i−1 ──┐
//	row i   ──┼──► row i decoupled from i±1, now coupled to i±2
//	row i+1 ──┘
//
// Each pass doubles the coupling distance until every equation stands
// alone; the solution is then a single elementwise division.
//
// See pcr/doc.go for the algorithm details and examples/ for a runnable
// demonstration driver.
package KPP2Projekt

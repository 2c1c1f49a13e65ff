// SPDX-License-Identifier: MIT

// Package pcr solves tridiagonal linear systems A·x = y with Parallel
// Cyclic Reduction (PCR), the O(log₂ N)-pass elimination scheme from
// Hockney & Jesshope, "Parallel Computers 2" (1988), p. 475–483.
//
// 🚀 What is PCR?
//
//	Cyclic reduction decouples every equation from its neighbors at
//	geometrically increasing distance: after pass k, equation i no
//	longer depends on equations i±2^(k−1). After ceil(log₂ N) passes
//	every equation stands alone as b[i]·x[i] = y[i], and the solution
//	is a single elementwise division. Within one pass all N row
//	updates are mutually independent, which is the whole point:
//	  • sequential across levels, fully parallel across rows
//	  • no pivoting, no fill-in, fixed O(N·log N) work
//	  • the classic tridiagonal kernel for SIMD/GPU-style hardware
//
// ✨ Key features:
//   - boundary-aware diagonals: out-of-range reads resolve to the
//     matrix's implicit identity extension (see BoundaryRole)
//   - bulk-synchronous level updates: fresh buffers per level, a hard
//     barrier between levels, wholesale swap — never in-place writes
//   - configurable worker count, ε pivot safeguard, optional strict
//     tridiagonal validation (see Options)
//   - Reconstruct for visualizing the bands wandering outward per level
//
// ⚙️ Usage:
//
//	import "github.com/gespel/KPP2Projekt/pcr"
//
//	A := [][]float64{
//	  {4, 3, 0, 0},
//	  {8, 4, 9, 0},
//	  {0, 2, 8, 4},
//	  {0, 0, 4, 8},
//	}
//	y := []float64{1, 2, 3, 4}
//
//	x, err := pcr.Solve(A, y, nil) // nil ⇒ DefaultOptions()
//
// Performance:
//
//   - Time:   O(N·log N) work over ceil(log₂ N) passes
//   - Memory: O(N) per level (four fresh buffers, previous four dropped)
//
// PCR trades the O(N) work of the Thomas algorithm for parallel depth
// O(log N); use package tridiag when you want the serial direct solve
// (it also serves as the cross-check oracle in this module's tests).
package pcr

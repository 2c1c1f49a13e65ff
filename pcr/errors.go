// SPDX-License-Identifier: MIT

package pcr

import "errors"

// Sentinel errors for the pcr package. All public entry points return
// these sentinels (possibly wrapped) and tests match them via errors.Is;
// no user-triggered condition panics.
var (
	// ErrEmptySystem indicates the input matrix has no rows.
	ErrEmptySystem = errors.New("pcr: system must have at least one equation")
	// ErrNonSquare indicates the input matrix is not square (including ragged rows).
	ErrNonSquare = errors.New("pcr: matrix must be square")
	// ErrDimensionMismatch indicates len(y) differs from the matrix side length.
	ErrDimensionMismatch = errors.New("pcr: right-hand side length must equal matrix side")
	// ErrNotTridiagonal indicates a nonzero entry outside the three central
	// bands was found under Options.ValidateTridiagonal.
	ErrNotTridiagonal = errors.New("pcr: matrix has nonzero entries outside the tridiagonal bands")
	// ErrBadOptions indicates a nonsensical Options value (e.g. Epsilon ≤ 0 or NaN).
	ErrBadOptions = errors.New("pcr: invalid options")
)

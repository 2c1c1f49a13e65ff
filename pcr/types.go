// SPDX-License-Identifier: MIT

// Package pcr: core types for the Parallel Cyclic Reduction solver.
// This file defines BoundaryRole and Diagonal, the boundary-aware
// diagonal abstraction every reduction kernel reads through.
package pcr

// BoundaryRole classifies a diagonal's position inside the tridiagonal
// system and fixes the value returned for out-of-range accesses.
// The reduction's ± stride lookups deliberately run off the ends of the
// diagonals; the role supplies the identity-like extension of the matrix
// beyond its edges (Hockney & Jesshope, Parallel Computers 2, p. 480).
type BoundaryRole int

const (
	// RoleNone marks a diagonal without boundary semantics (the right-hand
	// side). Out-of-range reads yield 0.
	RoleNone BoundaryRole = iota
	// RoleLeft marks the sub-diagonal. Out-of-range reads yield 0.
	RoleLeft
	// RoleCenter marks the main diagonal. Out-of-range reads yield 1,
	// modeling the implicit identity extension of the matrix.
	RoleCenter
	// RoleRight marks the super-diagonal. Out-of-range reads yield 0.
	RoleRight
)

// boundaryDefault returns the implicit value a role supplies outside the
// stored range. Only RoleCenter deviates from zero.
func (r BoundaryRole) boundaryDefault() float64 {
	if r == RoleCenter {
		return 1
	}

	return 0
}

// Diagonal is a fixed-length sequence of reals plus a BoundaryRole.
// It is exclusively owned by whichever (a, b, c, y) slot holds it and is
// replaced wholesale each reduction level, never mutated element-wise
// while other rows may still be reading it.
type Diagonal struct {
	values []float64
	role   BoundaryRole
}

// NewDiagonal builds a Diagonal over values with the given role.
// The slice is adopted, not copied; callers hand over ownership.
func NewDiagonal(values []float64, role BoundaryRole) Diagonal {
	return Diagonal{values: values, role: role}
}

// Get returns the element at idx, or the role's boundary default when idx
// lies outside [0, Len). Any integer index is legal input; there is no
// error path by design.
func (d *Diagonal) Get(idx int) float64 {
	if idx >= 0 && idx < len(d.values) {
		return d.values[idx]
	}

	return d.role.boundaryDefault()
}

// Replace swaps the underlying buffer for newValues in one assignment.
// The swap is wholesale: the previous buffer stays intact for anyone
// still holding it, which is what the level update relies on.
func (d *Diagonal) Replace(newValues []float64) {
	d.values = newValues
}

// Len reports the number of stored elements.
func (d *Diagonal) Len() int {
	return len(d.values)
}

// Role reports the diagonal's boundary role.
func (d *Diagonal) Role() BoundaryRole {
	return d.role
}

// Values returns a copy of the stored elements. The copy keeps the
// exclusive-ownership invariant: callers can inspect a snapshot without
// aliasing the live buffer.
func (d *Diagonal) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

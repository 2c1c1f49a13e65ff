// SPDX-License-Identifier: MIT

package pcr

import "math"

// DefaultEpsilon is the pivot safeguard added to a denominator that is
// exactly zero during a reduction level. The value matches the classic
// PCR formulation: small enough to be invisible next to any genuine
// pivot, large enough to keep the division finite.
const DefaultEpsilon = 1e-25

// Options contains tunable parameters for Solve.
//
// Fields:
//   - Workers             — number of goroutines processing rows within one
//     level. Values ≤ 0 select runtime.NumCPU(). Row order within a level
//     is unconstrained; the result does not depend on Workers.
//   - Epsilon             — safeguard added to an exactly-zero pivot during
//     reduction. Must be > 0 and finite.
//   - ValidateTridiagonal — when true, Solve scans the full matrix and
//     rejects nonzero entries outside the three central bands with
//     ErrNotTridiagonal. Off by default: the scan is O(N²) and the
//     reference behavior is to silently ignore the far bands.
type Options struct {
	Workers             int
	Epsilon             float64
	ValidateTridiagonal bool
}

// DefaultOptions returns Options with default settings:
// Workers=0 (auto), Epsilon=DefaultEpsilon, ValidateTridiagonal=false.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		Epsilon: DefaultEpsilon,
	}
}

// validate rejects nonsensical option values with ErrBadOptions.
func (o Options) validate() error {
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return ErrBadOptions
	}

	return nil
}

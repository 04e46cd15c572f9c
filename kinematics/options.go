// SPDX-License-Identifier: MIT

// Package kinematics: functional configuration of the numeric policy applied
// to out-of-domain inputs. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The default policy is strict: every domain violation is returned as an
//     error wrapping ErrDomain and the numeric result is 0.
//   - WithNaNPropagation selects the legacy policy: the violation is reported
//     as a NaN result with a nil error, exactly what bare float arithmetic
//     would produce. It never changes results for valid inputs.
//   - WithTolerance only affects the space-like check of the mass radicand.
package kinematics

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the magnitude by which a normalised mass radicand
	// (1 - |p|²/e²) may be negative and still be clamped to zero.
	// Zero means any negative radicand is a domain error.
	DefaultTolerance = 0.0

	// DefaultPropagateNaN selects strict error reporting.
	DefaultPropagateNaN = false
)

const panicToleranceInvalid = "kinematics: WithTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tolerance    float64 // >= 0; DefaultTolerance
	propagateNaN bool    // DefaultPropagateNaN
}

// WithTolerance lets mass radicands in [-eps, 0) clamp to zero instead of
// failing with ErrSpacelike. Useful for massless objects whose stored
// components carry rounding noise.
//
// Panics when eps is negative, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// WithNaNPropagation reports domain violations as NaN with a nil error.
func WithNaNPropagation() Option {
	return func(o *Options) { o.propagateNaN = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		tolerance:    DefaultTolerance,
		propagateNaN: DefaultPropagateNaN,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// fail resolves a domain violation under the policy: NaN with nil error when
// propagating, otherwise 0 and the wrapped sentinel.
func (o Options) fail(op string, err error) (float64, error) {
	if o.propagateNaN {
		return math.NaN(), nil
	}

	return 0, kinematicsErrorf(op, err)
}

// SPDX-License-Identifier: MIT
// Package kinematics: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// kinematics package. Functions return these sentinels wrapped with the
// operation name; callers match them via errors.Is. No function panics on
// user-supplied values. Panics are reserved for option constructors.

package kinematics

import (
	"errors"
	"fmt"
)

// Error taxonomy
// --------------
// Two categories exist: ErrDomain (the operation is mathematically undefined
// for the inputs) and ErrOverflow (finite inputs produced an infinite result).
// Every specific domain sentinel below matches ErrDomain through errors.Is, so
// batch callers can skip an event on any domain violation with one check.
// Their text carries no package prefix; the wrapped ErrDomain supplies it once.

var (
	// ErrDomain is the category of all domain violations.
	ErrDomain = errors.New("kinematics: input outside function domain")

	// ErrOverflow signals that finite inputs produced a non-finite result.
	ErrOverflow = errors.New("kinematics: numeric overflow")
)

var (
	// ErrZeroEnergy is returned when a mass is requested for e == 0.
	ErrZeroEnergy = fmt.Errorf("zero energy: %w", ErrDomain)

	// ErrNonFinite is returned when any input is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("NaN or Inf input: %w", ErrDomain)

	// ErrSpacelike is returned when |p| exceeds |e| beyond the configured tolerance,
	// i.e. the mass radicand is negative.
	ErrSpacelike = fmt.Errorf("space-like four-momentum: %w", ErrDomain)

	// ErrNegativePt is returned when a transverse momentum is negative.
	ErrNegativePt = fmt.Errorf("negative transverse momentum: %w", ErrDomain)

	// ErrNotTimelike is returned when a boost vector is requested for a
	// four-momentum with E == 0 or |p| >= |E|.
	ErrNotTimelike = fmt.Errorf("four-momentum is not time-like: %w", ErrDomain)

	// ErrSuperluminal is returned when a boost with |β| >= 1 is requested.
	ErrSuperluminal = fmt.Errorf("boost velocity |beta| >= 1: %w", ErrDomain)

	// ErrZeroVector is returned when an angle is requested against a
	// zero-length three-vector.
	ErrZeroVector = fmt.Errorf("zero-length three-vector: %w", ErrDomain)
)

// kinematicsErrorf prefixes err with the operation tag.
func kinematicsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

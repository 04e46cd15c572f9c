// SPDX-License-Identifier: MIT
// Package: kinematics
//
// Purpose:
//   - Invariant mass from (e, px, py, pz) with the momentum normalised by energy.
//   - Two-body transverse mass, massive and massless forms.
//
// Exposed API:
//   - InvariantMass(e, px, py, pz, opts...)              -> (m, error)
//   - InvariantMassOf(p, opts...)                        -> (m, error)
//   - TransverseMass(m1, pt1, phi1, m2, pt2, phi2, ...)  -> (mT, error)
//   - TransverseMassMassless(pt1, phi1, pt2, phi2, ...)  -> (mT, error)
//
// Error policy (see options.go):
//   - Strict by default: domain violations return 0 and an error matching ErrDomain.
//   - WithNaNPropagation: domain violations return NaN and a nil error.
//   - Finite inputs yielding an infinite result report ErrOverflow (strict)
//     or the infinite value (NaN propagation).

package kinematics

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Operation name constants for unified error wrapping.
const (
	opInvariantMass          = "InvariantMass"
	opTransverseMass         = "TransverseMass"
	opTransverseMassMassless = "TransverseMassMassless"
)

// InvariantMass returns m = |e|·sqrt(1 − (px/e)² − (py/e)² − (pz/e)²).
//
// Implementation:
//   - Stage 1: reject non-finite inputs and e == 0.
//   - Stage 2: normalise the momentum by e so no component is squared at full scale.
//   - Stage 3: clamp a radicand in [−tolerance, 0) to zero; below that the
//     four-momentum is space-like.
//
// Inputs:
//   - e: energy (sign ignored, |e| is used).
//   - px, py, pz: momentum components in the same units as e.
//
// Returns:
//   - float64: the mass, ≥ 0.
//
// Errors:
//   - ErrNonFinite, ErrZeroEnergy, ErrSpacelike (all match ErrDomain).
//
// Complexity: O(1).
func InvariantMass(e, px, py, pz float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	// Stage 1 (Validate)
	if anyNonFinite(e, px, py, pz) {
		return o.fail(opInvariantMass, ErrNonFinite)
	}
	if e == 0 {
		return o.fail(opInvariantMass, ErrZeroEnergy)
	}

	// Stage 2 (Normalise)
	bx, by, bz := px/e, py/e, pz/e
	r := 1 - bx*bx - by*by - bz*bz

	// Stage 3 (Radicand policy)
	if r < 0 {
		if r < -o.tolerance {
			return o.fail(opInvariantMass, ErrSpacelike)
		}
		r = 0
	}

	return math.Abs(e) * math.Sqrt(r), nil
}

// InvariantMassOf is InvariantMass over the components of p.
func InvariantMassOf(p fmom.P4, opts ...Option) (float64, error) {
	return InvariantMass(p.E(), p.Px(), p.Py(), p.Pz(), opts...)
}

// TransverseMass returns the two-body transverse mass
//
//	mT = sqrt(m1² + m2² + 2·(sqrt((m1²+pt1²)(m2²+pt2²)) − pt1·pt2·cos(φ2−φ1)))
//
// Implementation:
//   - Stage 1: reject non-finite inputs and negative pt.
//   - Stage 2: divide every mass and pt by the largest of them, so no square
//     is formed at full scale.
//   - Stage 3: split the bracket as (ET1·ET2 − pt1·pt2) + pt1·pt2·(1 − cos Δφ).
//     The first term is evaluated as (m1²pt2² + m2²pt1² + m1²m2²)/(ET1·ET2 + pt1·pt2),
//     the second with 1 − cos = 2·sin²(Δφ/2). Both are ≥ 0, so the radicand
//     never goes negative through cancellation.
//   - Stage 4: rescale; an infinite result means the true mT exceeds MaxFloat64.
//
// Behavior highlights:
//   - With m1 = m2 = 0 the first term vanishes exactly and the result equals
//     TransverseMassMassless.
//   - The sign of m1, m2 is irrelevant; only their squares enter.
//
// Errors:
//   - ErrNonFinite, ErrNegativePt (match ErrDomain); ErrOverflow.
//
// Complexity: O(1).
func TransverseMass(m1, pt1, phi1, m2, pt2, phi2 float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	// Stage 1 (Validate)
	if anyNonFinite(m1, pt1, phi1, m2, pt2, phi2) {
		return o.fail(opTransverseMass, ErrNonFinite)
	}
	if pt1 < 0 || pt2 < 0 {
		return o.fail(opTransverseMass, ErrNegativePt)
	}

	// Stage 2 (Normalise)
	scale := math.Max(math.Max(math.Abs(m1), math.Abs(m2)), math.Max(pt1, pt2))
	if scale == 0 {
		return 0, nil
	}
	m1, pt1, m2, pt2 = m1/scale, pt1/scale, m2/scale, pt2/scale

	// Stage 3 (Execute)
	mt2 := m1*m1 + m2*m2 + 2*(transverseEnergyExcess(m1, pt1, m2, pt2)+pt1*pt2*oneMinusCos(phi2-phi1))

	// Stage 4 (Finalize)
	return o.finishTransverse(opTransverseMass, scale*math.Sqrt(mt2))
}

// TransverseMassMassless returns sqrt(2·pt1·pt2·(1 − cos(φ2−φ1))), evaluated
// as 2·sqrt(pt1)·sqrt(pt2)·|sin(Δφ/2)| so the product pt1·pt2 is never formed.
//
// This is TransverseMass with m1 = m2 = 0, kept as a shorter code path.
//
// Errors:
//   - ErrNonFinite, ErrNegativePt (match ErrDomain); ErrOverflow.
func TransverseMassMassless(pt1, phi1, pt2, phi2 float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	if anyNonFinite(pt1, phi1, pt2, phi2) {
		return o.fail(opTransverseMassMassless, ErrNonFinite)
	}
	if pt1 < 0 || pt2 < 0 {
		return o.fail(opTransverseMassMassless, ErrNegativePt)
	}

	mt := 2 * math.Sqrt(pt1) * math.Sqrt(pt2) * math.Abs(math.Sin((phi2-phi1)/2))

	return o.finishTransverse(opTransverseMassMassless, mt)
}

// transverseEnergyExcess returns ET1·ET2 − pt1·pt2 without cancellation,
// where ETi = sqrt(mi² + pti²). It is zero when both masses are zero.
// Callers pass operands normalised to at most 1 in magnitude.
func transverseEnergyExcess(m1, pt1, m2, pt2 float64) float64 {
	m1sq, m2sq := m1*m1, m2*m2
	num := m1sq*pt2*pt2 + m2sq*pt1*pt1 + m1sq*m2sq
	if num == 0 {
		return 0
	}
	et1, et2 := AddInQuadrature(m1, pt1), AddInQuadrature(m2, pt2)

	return num / (et1*et2 + pt1*pt2)
}

// finishTransverse maps a non-finite mT (finite inputs only reach here) to
// ErrOverflow.
func (o Options) finishTransverse(op string, mt float64) (float64, error) {
	if isNonFinite(mt) && !o.propagateNaN {
		return 0, kinematicsErrorf(op, ErrOverflow)
	}

	return mt, nil
}

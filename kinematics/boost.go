// SPDX-License-Identifier: MIT
// Package: kinematics
//
// Purpose:
//   - Lorentz boosts of fmom four-vectors by an r3 velocity.
//   - Helicity-frame angle between a lepton and a reference object
//     (CosThetaJeffrey), evaluated in the dilepton rest frame.
//
// Determinism & Performance:
//   - Pure, O(1), value semantics: inputs are never mutated.
//
// Notes:
//   - fmom.PxPyPzE implements fmom.P4 through pointer receivers; pass &p.

package kinematics

import (
	"math"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	opBoost           = "Boost"
	opBoostVector     = "BoostVector"
	opCosThetaJeffrey = "CosThetaJeffrey"
)

// zeroVectorTol is the relative size |p⃗|/E below which a boosted
// three-momentum is treated as zero-length: its direction is rounding noise.
const zeroVectorTol = 1e-9

// FromPtEtaPhiM builds a four-vector from collider coordinates.
// The energy is AddInQuadrature(|p|, m), so m may be zero or negative
// (only m² matters).
func FromPtEtaPhiM(pt, eta, phi, m float64) fmom.PxPyPzE {
	px := pt * math.Cos(phi)
	py := pt * math.Sin(phi)
	pz := pt * math.Sinh(eta)
	p := pt * math.Cosh(eta)

	return fmom.NewPxPyPzE(px, py, pz, AddInQuadrature(p, m))
}

// BoostVector returns β = p⃗/E, the velocity of the rest frame of p.
//
// Errors:
//   - ErrNonFinite when a component is NaN or ±Inf.
//   - ErrNotTimelike when E == 0 or |β| ≥ 1.
func BoostVector(p fmom.P4) (r3.Vec, error) {
	beta, err := boostVector(p)
	if err != nil {
		return r3.Vec{}, kinematicsErrorf(opBoostVector, err)
	}

	return beta, nil
}

// boostVector is BoostVector returning bare sentinels.
func boostVector(p fmom.P4) (r3.Vec, error) {
	e := p.E()
	if anyNonFinite(p.Px(), p.Py(), p.Pz(), e) {
		return r3.Vec{}, ErrNonFinite
	}
	if e == 0 {
		return r3.Vec{}, ErrNotTimelike
	}
	beta := r3.Scale(1/e, vecOf(p))
	if r3.Norm2(beta) >= 1 {
		return r3.Vec{}, ErrNotTimelike
	}

	return beta, nil
}

// Boost returns p boosted by the velocity beta (|beta| < 1).
//
// Implementation:
//
//	γ  = 1/sqrt(1 − β²)
//	p⃗' = p⃗ + ((γ−1)/β²)(β⃗·p⃗)β⃗ + γEβ⃗
//	E' = γ(E + β⃗·p⃗)
//
// Boosting by −BoostVector(q) moves into the rest frame of q.
//
// Errors:
//   - ErrNonFinite for NaN/Inf components of p or beta.
//   - ErrSuperluminal when |beta| ≥ 1.
func Boost(p fmom.P4, beta r3.Vec) (fmom.PxPyPzE, error) {
	out, err := boost(p, beta)
	if err != nil {
		return fmom.PxPyPzE{}, kinematicsErrorf(opBoost, err)
	}

	return out, nil
}

// boost is Boost returning bare sentinels.
func boost(p fmom.P4, beta r3.Vec) (fmom.PxPyPzE, error) {
	e := p.E()
	if anyNonFinite(p.Px(), p.Py(), p.Pz(), e, beta.X, beta.Y, beta.Z) {
		return fmom.PxPyPzE{}, ErrNonFinite
	}
	b2 := r3.Norm2(beta)
	if b2 >= 1 {
		return fmom.PxPyPzE{}, ErrSuperluminal
	}

	gamma := 1 / math.Sqrt(1-b2)
	v := vecOf(p)
	bp := r3.Dot(beta, v)
	gamma2 := 0.0
	if b2 > 0 {
		gamma2 = (gamma - 1) / b2
	}
	v = r3.Add(v, r3.Scale(gamma2*bp+gamma*e, beta))

	return fmom.NewPxPyPzE(v.X, v.Y, v.Z, gamma*(e+bp)), nil
}

// CosThetaJeffrey returns the cosine of the angle between the negative
// lepton and the reference object (typically the photon), both taken in the
// rest frame of the dilepton system.
//
// Implementation:
//   - Stage 1: ll = lminus + lplus; β = BoostVector(ll).
//   - Stage 2: boost lminus and ref by −β.
//   - Stage 3: cos θ = l⃗·r⃗ / (|l⃗||r⃗|), clamped to [−1, 1] against rounding.
//
// Errors (all match ErrDomain; NaN with nil error under WithNaNPropagation):
//   - ErrNonFinite, ErrNotTimelike for the dilepton system.
//   - ErrZeroVector when either boosted three-momentum is zero-length
//     (relative to its boosted energy), where the angle is undefined.
func CosThetaJeffrey(lminus, lplus, ref fmom.P4, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	// Stage 1 (Rest frame)
	ll := fmom.NewPxPyPzE(
		lminus.Px()+lplus.Px(),
		lminus.Py()+lplus.Py(),
		lminus.Pz()+lplus.Pz(),
		lminus.E()+lplus.E(),
	)
	beta, err := boostVector(&ll)
	if err != nil {
		return o.fail(opCosThetaJeffrey, err)
	}
	back := r3.Scale(-1, beta)

	// Stage 2 (Boost)
	l, err := boost(lminus, back)
	if err != nil {
		return o.fail(opCosThetaJeffrey, err)
	}
	r, err := boost(ref, back)
	if err != nil {
		return o.fail(opCosThetaJeffrey, err)
	}

	// Stage 3 (Angle)
	lv, rv := vecOf(&l), vecOf(&r)
	nl, nr := r3.Norm(lv), r3.Norm(rv)
	if isZeroLength(nl, l.E()) || isZeroLength(nr, r.E()) {
		return o.fail(opCosThetaJeffrey, ErrZeroVector)
	}
	c := r3.Dot(lv, rv) / (nl * nr)

	return math.Max(-1, math.Min(1, c)), nil
}

// vecOf returns the spatial part of p.
func vecOf(p fmom.P4) r3.Vec {
	return r3.Vec{X: p.Px(), Y: p.Py(), Z: p.Pz()}
}

// isZeroLength reports whether a three-momentum of magnitude norm is zero,
// either exactly or relative to the energy e of its four-vector.
func isZeroLength(norm, e float64) bool {
	return norm == 0 || norm <= zeroVectorTol*math.Abs(e)
}

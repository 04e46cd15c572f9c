// Package kinematics provides the numerically sensitive formulas used in
// collider event analysis: azimuthal separations, ΔR, quadrature sums,
// invariant and transverse masses, Lorentz boosts and the helicity-frame
// angle of a lepton pair.
//
// 🚀 What is inside?
//
//	Angles:   DeltaPhi ∈ [0, π], SignedDeltaPhi ∈ (−π, π], DeltaR
//	Sums:     AddInQuadrature (overflow-free sqrt(x²+y²))
//	Masses:   InvariantMass, InvariantMassOf, TransverseMass, TransverseMassMassless
//	Frames:   FromPtEtaPhiM, BoostVector, Boost, CosThetaJeffrey
//
// ✨ Guarantees:
//   - Every function is pure and safe for concurrent use; no package state.
//   - Angles are accepted unnormalised (negative, beyond 2π).
//   - Domain violations never panic. By default they surface as errors
//     matching ErrDomain; WithNaNPropagation switches to NaN results.
//   - TransverseMassMassless is the m1 = m2 = 0 case of TransverseMass,
//     not a separate formula; both share the same 1 − cos evaluation.
//
// ⚙️ Usage:
//
//	m, err := kinematics.InvariantMass(e, px, py, pz)
//	if errors.Is(err, kinematics.ErrDomain) {
//		// skip the event
//	}
//
//	mt, _ := kinematics.TransverseMassMassless(lepPt, lepPhi, metPt, metPhi)
//
// Four-vectors are go-hep fmom values (fmom.PxPyPzE); three-vectors are
// gonum r3.Vec.
package kinematics

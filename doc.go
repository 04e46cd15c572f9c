// Package hepkin is a small toolkit for the arithmetic that sits between
// reading a collider event and filling a histogram: angular separations,
// invariant and transverse masses, Lorentz boosts, weighted counts and the
// bookkeeping of which NanoAOD branch holds which quantity.
//
// 🚀 What is inside?
//
//	kinematics/  ΔΦ, signed ΔΦ, ΔR, AddInQuadrature, InvariantMass,
//	             TransverseMass, Boost, CosThetaJeffrey (go-hep fmom, gonum r3)
//	stats/       Count (value ± σ), Counter over a one-bin hbook.H1D, CountIf
//	format/      RoundNumber, AddCommas, HoursMinSec, Tokenize
//	nanoschema/  version-dependent branch resolution from a YAML table
//	cmd/hepkin   command-line front end (cobra)
//
// ✨ Why?
//
//   - Numerically careful – quadrature sums do not overflow and massive
//     transverse masses do not cancel
//   - Explicit failure – domain violations are errors matching
//     kinematics.ErrDomain, or NaN when the legacy policy is selected
//   - Pure functions – no package state, safe for concurrent use
//
// Quick example:
//
//	mt, err := kinematics.TransverseMassMassless(lepPt, lepPhi, metPt, metPhi)
//	if errors.Is(err, kinematics.ErrDomain) {
//		continue // skip the event
//	}
//
//	go get github.com/katalvlaran/hepkin
package hepkin

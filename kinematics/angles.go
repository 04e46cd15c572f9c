// SPDX-License-Identifier: MIT
// Package: kinematics
//
// Purpose:
//   - Azimuthal separations with correct wrapping across the −π/π branch cut.
//   - Quadrature addition without overflow or underflow.
//   - ΔR as the composition of the two.
//
// Determinism & Performance:
//   - Pure O(1) functions; no allocation, no error paths.
//   - Non-finite inputs propagate to a NaN (or +Inf for quadrature) result.

package kinematics

import "math"

const twoPi = 2 * math.Pi

// DeltaPhi returns the unsigned minimal separation between two azimuthal
// angles, in [0, π].
//
// Implementation:
//   - Stage 1: d = mod(|φ2 − φ1|, 2π), which lies in [0, 2π).
//   - Stage 2: if d > π, the shorter arc is 2π − d.
//
// Behavior highlights:
//   - Inputs need not be normalised: any real angle, negative or beyond 2π.
//   - Symmetric: DeltaPhi(a, b) == DeltaPhi(b, a) bitwise.
//
// Complexity: O(1).
func DeltaPhi(phi1, phi2 float64) float64 {
	d := math.Mod(math.Abs(phi2-phi1), twoPi)
	if d > math.Pi {
		return twoPi - d
	}

	return d
}

// SignedDeltaPhi returns φ2 − φ1 wrapped into (−π, π].
// A positive result means phi2 is ahead of phi1 counter-clockwise.
//
// Implementation:
//   - Stage 1: d = fmod(φ2 − φ1, 2π); the sign follows the difference, so d ∈ (−2π, 2π).
//   - Stage 2: fold d > π down and d ≤ −π up by one period.
//
// Behavior highlights:
//   - Exactly −π maps to +π, keeping the interval half-open.
//   - Antisymmetric except at the π boundary.
//
// Complexity: O(1).
func SignedDeltaPhi(phi1, phi2 float64) float64 {
	d := math.Mod(phi2-phi1, twoPi)
	switch {
	case d > math.Pi:
		return d - twoPi
	case d <= -math.Pi:
		return d + twoPi
	default:
		return d
	}
}

// AddInQuadrature returns sqrt(x² + y²) without squaring the larger operand.
//
// Implementation:
//   - Stage 1: order the operands so |y| ≤ |x|.
//   - Stage 2: x == 0 implies y == 0; return 0.
//   - Stage 3: |x|·sqrt(1 + (y/x)²), where (y/x)² ≤ 1 cannot overflow.
//
// Behavior highlights:
//   - Result ≥ 0, exactly 0 iff both inputs are 0.
//   - ±Inf in either operand yields +Inf, as math.Hypot does.
//   - AddInQuadrature(1e200, 1) == 1e200; the naive formula overflows.
//
// Complexity: O(1).
func AddInQuadrature(x, y float64) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return math.Inf(1)
	}
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
	}
	if x == 0 {
		return math.Abs(y)
	}
	rat := y / x

	return math.Abs(x) * math.Sqrt(1+rat*rat)
}

// DeltaR returns the angular distance sqrt(Δη² + Δφ²) between two objects.
// The φ term uses the unsigned minimal wrap of DeltaPhi; η is not periodic.
func DeltaR(eta1, eta2, phi1, phi2 float64) float64 {
	return AddInQuadrature(eta1-eta2, DeltaPhi(phi1, phi2))
}

// oneMinusCos returns 1 − cos(x) as 2·sin²(x/2), which keeps full relative
// precision for small x where 1 − cos(x) cancels.
func oneMinusCos(x float64) float64 {
	s := math.Sin(x / 2)

	return 2 * s * s
}

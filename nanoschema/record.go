// SPDX-License-Identifier: MIT
// Package: nanoschema
//
// Purpose:
//   - Record: read access to the branches of one event.
//   - Accessors that resolve a logical field and read it in one step.

package nanoschema

const (
	opMET    = "MET"
	opJets   = "Jets"
	opFloats = "Floats"
	opInts   = "Ints"
)

// Record exposes the branches of one event by physical name. The boolean
// reports whether the branch exists.
type Record interface {
	Float32(branch string) (float32, bool)
	Float32s(branch string) ([]float32, bool)
	Int32s(branch string) ([]int32, bool)
}

// MapRecord is an in-memory Record.
type MapRecord struct {
	Scalars map[string]float32
	Floats  map[string][]float32
	Ints    map[string][]int32
}

// Float32 implements Record.
func (m MapRecord) Float32(branch string) (float32, bool) {
	x, ok := m.Scalars[branch]
	return x, ok
}

// Float32s implements Record.
func (m MapRecord) Float32s(branch string) ([]float32, bool) {
	x, ok := m.Floats[branch]
	return x, ok
}

// Int32s implements Record.
func (m MapRecord) Int32s(branch string) ([]int32, bool) {
	x, ok := m.Ints[branch]
	return x, ok
}

// MET returns the missing transverse momentum and its azimuth from the
// branches appropriate for v.
//
// Errors:
//   - ErrMissingBranch when either resolved branch is absent.
func (r *Resolver) MET(rec Record, v Version) (pt, phi float32, err error) {
	ptName, phiName := r.Resolve("MET_pt", v), r.Resolve("MET_phi", v)
	pt, ok := rec.Float32(ptName)
	if !ok {
		return 0, 0, nanoschemaErrorf(opMET, missingBranch(ptName))
	}
	phi, ok = rec.Float32(phiName)
	if !ok {
		return 0, 0, nanoschemaErrorf(opMET, missingBranch(phiName))
	}

	return pt, phi, nil
}

// Jets returns the per-jet pt and mass appropriate for v (the _nom
// corrected values in fast simulation).
//
// Errors:
//   - ErrMissingBranch when a resolved branch is absent.
//   - ErrLengthMismatch when pt and mass differ in length.
func (r *Resolver) Jets(rec Record, v Version) (pt, mass []float32, err error) {
	ptName, massName := r.Resolve("Jet_pt", v), r.Resolve("Jet_mass", v)
	pt, ok := rec.Float32s(ptName)
	if !ok {
		return nil, nil, nanoschemaErrorf(opJets, missingBranch(ptName))
	}
	mass, ok = rec.Float32s(massName)
	if !ok {
		return nil, nil, nanoschemaErrorf(opJets, missingBranch(massName))
	}
	if len(pt) != len(mass) {
		return nil, nil, nanoschemaErrorf(opJets, ErrLengthMismatch)
	}

	return pt, mass, nil
}

// Floats resolves field and reads it as a per-object float branch.
func (r *Resolver) Floats(rec Record, field string, v Version) ([]float32, error) {
	name := r.Resolve(field, v)
	xs, ok := rec.Float32s(name)
	if !ok {
		return nil, nanoschemaErrorf(opFloats, missingBranch(name))
	}

	return xs, nil
}

// Ints resolves field and reads it as a per-object integer branch.
func (r *Resolver) Ints(rec Record, field string, v Version) ([]int32, error) {
	name := r.Resolve(field, v)
	xs, ok := rec.Int32s(name)
	if !ok {
		return nil, nanoschemaErrorf(opInts, missingBranch(name))
	}

	return xs, nil
}

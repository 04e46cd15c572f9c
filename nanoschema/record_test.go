package nanoschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepkin/nanoschema"
)

func sampleRecord() nanoschema.MapRecord {
	return nanoschema.MapRecord{
		Scalars: map[string]float32{
			"MET_pt":              40,
			"MET_phi":             0.5,
			"MET_T1_pt":           42,
			"MET_T1_phi":          0.6,
			"METFixEE2017_T1_pt":  44,
			"METFixEE2017_T1_phi": 0.7,
		},
		Floats: map[string][]float32{
			"Jet_pt":           {50, 30},
			"Jet_mass":         {8, 5},
			"Jet_pt_nom":       {52, 31},
			"Jet_mass_nom":     {8.5, 5.2},
			"FatJet_btagDDBvL": {0.9},
		},
		Ints: map[string][]int32{
			"Jet_jetId":      {6, 2},
			"Jet_jetId_11p9": {6, 6},
		},
	}
}

func TestResolver_MET(t *testing.T) {
	r, rec := nanoschema.Default(), sampleRecord()

	pt, phi, err := r.MET(rec, nanoschema.Version{Year: 2018})
	require.NoError(t, err)
	assert.Equal(t, float32(40), pt)
	assert.Equal(t, float32(0.5), phi)

	pt, phi, err = r.MET(rec, nanoschema.Version{Year: 2017, Fastsim: true, PreUL: true})
	require.NoError(t, err)
	assert.Equal(t, float32(44), pt)
	assert.Equal(t, float32(0.7), phi)

	// Full-simulation 2017 pre-UL needs METFixEE2017_pt, absent here.
	_, _, err = r.MET(rec, nanoschema.Version{Year: 2017, PreUL: true})
	assert.ErrorIs(t, err, nanoschema.ErrMissingBranch)
	assert.Contains(t, err.Error(), "METFixEE2017_pt")
}

func TestResolver_Jets(t *testing.T) {
	r, rec := nanoschema.Default(), sampleRecord()

	pt, mass, err := r.Jets(rec, nanoschema.Version{Year: 2018, Fastsim: true})
	require.NoError(t, err)
	assert.Equal(t, []float32{52, 31}, pt)
	assert.Equal(t, []float32{8.5, 5.2}, mass)

	rec.Floats["Jet_mass"] = []float32{8}
	_, _, err = r.Jets(rec, nanoschema.Version{Year: 2018})
	assert.ErrorIs(t, err, nanoschema.ErrLengthMismatch)

	delete(rec.Floats, "Jet_mass")
	_, _, err = r.Jets(rec, nanoschema.Version{Year: 2018})
	assert.ErrorIs(t, err, nanoschema.ErrMissingBranch)
}

func TestResolver_FloatsInts(t *testing.T) {
	r, rec := nanoschema.Default(), sampleRecord()

	ids, err := r.Ints(rec, "Jet_jetId", nanoschema.Version{Year: 2023})
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 6}, ids)
	ids, err = r.Ints(rec, "Jet_jetId", nanoschema.Version{Year: 2022})
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 2}, ids)

	ddb, err := r.Floats(rec, "FatJet_btagDDBvL", nanoschema.Version{NanoAOD: 7})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.9}, ddb)
	_, err = r.Floats(rec, "FatJet_btagDDBvL", nanoschema.Version{NanoAOD: 9})
	assert.ErrorIs(t, err, nanoschema.ErrMissingBranch)

	_, err = r.Ints(rec, "Photon_cutBased", nanoschema.Version{Year: 2018})
	assert.ErrorIs(t, err, nanoschema.ErrMissingBranch)
}

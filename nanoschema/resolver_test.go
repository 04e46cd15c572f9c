package nanoschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hepkin/nanoschema"
)

func TestDefault_MET(t *testing.T) {
	r := nanoschema.Default()
	tests := []struct {
		name    string
		v       nanoschema.Version
		wantPt  string
		wantPhi string
	}{
		{"fastsim 2017 preUL", nanoschema.Version{Year: 2017, Fastsim: true, PreUL: true}, "METFixEE2017_T1_pt", "METFixEE2017_T1_phi"},
		{"fastsim 2017 UL", nanoschema.Version{Year: 2017, Fastsim: true}, "MET_T1_pt", "MET_T1_phi"},
		{"fastsim 2018", nanoschema.Version{Year: 2018, Fastsim: true, PreUL: true}, "MET_T1_pt", "MET_T1_phi"},
		{"fullsim 2017 preUL", nanoschema.Version{Year: 2017, PreUL: true}, "METFixEE2017_pt", "METFixEE2017_phi"},
		{"fullsim 2017 UL", nanoschema.Version{Year: 2017}, "MET_pt", "MET_phi"},
		{"fullsim 2016 preUL", nanoschema.Version{Year: 2016, PreUL: true}, "MET_pt", "MET_phi"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantPt, r.Resolve("MET_pt", tc.v))
			assert.Equal(t, tc.wantPhi, r.Resolve("MET_phi", tc.v))
		})
	}
}

func TestDefault_Jets(t *testing.T) {
	r := nanoschema.Default()
	fast := nanoschema.Version{Year: 2018, Fastsim: true}
	full := nanoschema.Version{Year: 2018}
	assert.Equal(t, "Jet_pt_nom", r.Resolve("Jet_pt", fast))
	assert.Equal(t, "Jet_mass_nom", r.Resolve("Jet_mass", fast))
	assert.Equal(t, "Jet_pt", r.Resolve("Jet_pt", full))
	assert.Equal(t, "Jet_mass", r.Resolve("Jet_mass", full))
}

func TestDefault_Run3Indices(t *testing.T) {
	r := nanoschema.Default()
	for _, field := range []string{
		"Jet_jetId",
		"Photon_electronIdx",
		"Muon_fsrPhotonIdx",
		"Electron_photonIdx",
		"FsrPhoton_muonIdx",
		"Photon_jetIdx",
		"Photon_cutBased",
	} {
		assert.Equal(t, field+"_11p9", r.Resolve(field, nanoschema.Version{Year: 2023, NanoAOD: 12}), field)
		assert.Equal(t, field, r.Resolve(field, nanoschema.Version{Year: 2022, NanoAOD: 11}), field)
		assert.Equal(t, field, r.Resolve(field, nanoschema.Version{Year: 2018, NanoAOD: 9}), field)
	}
}

func TestDefault_FatJetDDBvL(t *testing.T) {
	r := nanoschema.Default()
	for _, tc := range []struct {
		nano float64
		want string
	}{
		{7, "FatJet_btagDDBvL"},
		{8.98, "FatJet_btagDDBvL"},
		{8.995, "FatJet_btagDDBvLV2"}, // within the 0.01 slack
		{9, "FatJet_btagDDBvLV2"},
		{11.9, "FatJet_btagDDBvLV2"},
	} {
		assert.Equal(t, tc.want, r.Resolve("FatJet_btagDDBvL", nanoschema.Version{NanoAOD: tc.nano}), "nano %g", tc.nano)
	}
}

func TestResolve_UnknownField(t *testing.T) {
	r := nanoschema.Default()
	assert.Equal(t, "Photon_pt", r.Resolve("Photon_pt", nanoschema.Version{Year: 2023, Fastsim: true}))
}

func TestDefault_Fields(t *testing.T) {
	fields := nanoschema.Default().Fields()
	assert.Len(t, fields, 12)
	assert.IsIncreasing(t, fields)
	assert.Contains(t, fields, "FatJet_btagDDBvL")
	assert.Same(t, nanoschema.Default(), nanoschema.Default())
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "2017 fastsim preUL nano9", nanoschema.Version{Year: 2017, Fastsim: true, PreUL: true, NanoAOD: 9}.String())
	assert.Equal(t, "2023 nano11.9", nanoschema.Version{Year: 2023, NanoAOD: 11.9}.String())
}

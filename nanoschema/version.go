package nanoschema

import "fmt"

// nanoAODSlack is added to Version.NanoAOD before comparing it with a
// threshold, so that 9 stored as 8.9999 still counts as 9.
const nanoAODSlack = 0.01

// Version describes the production of a sample.
type Version struct {
	Year    int     // data-taking year, e.g. 2016, 2017, 2023
	Fastsim bool    // fast simulation sample
	PreUL   bool    // pre-UL (legacy) reprocessing
	NanoAOD float64 // NanoAOD format version, e.g. 7, 9, 11.9
}

// String renders v for logs: "2017 fastsim preUL nano9".
func (v Version) String() string {
	s := fmt.Sprintf("%d", v.Year)
	if v.Fastsim {
		s += " fastsim"
	}
	if v.PreUL {
		s += " preUL"
	}

	return s + fmt.Sprintf(" nano%g", v.NanoAOD)
}

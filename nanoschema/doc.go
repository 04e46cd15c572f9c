// Package nanoschema maps logical NanoAOD fields to the physical branch
// names that hold them in a given kind of sample.
//
// The branch carrying a quantity depends on the data-taking year, on whether
// the sample is a fast simulation, on the pre-UL/UL reprocessing and on the
// NanoAOD format version. A Resolver holds that knowledge as data: for each
// field an ordered list of rules, the first matching rule wins, otherwise the
// field's default branch is used.
//
// 🚀 What is inside?
//
//	Version            sample description (Year, Fastsim, PreUL, NanoAOD)
//	Default()          resolver over the built-in table (MET, jets, 2023 _11p9 indices, FatJet DDBvL)
//	Load / LoadFile    resolver over a YAML table
//	Resolve(field, v)  physical branch name
//	MET, Jets, Floats, Ints
//	                   resolve and read through a Record
//
// ✨ Table format:
//
//	fields:
//	  MET_pt:
//	    default: MET_pt
//	    rules:
//	      - when: {fastsim: true, year: 2017, pre_ul: true}
//	        branch: METFixEE2017_T1_pt
//	      - when: {fastsim: true}
//	        branch: MET_T1_pt
//
// Conditions left out of a rule match anything. nanoaod_below: X holds when
// NanoAOD + 0.01 < X, and nanoaod_at_least: X is its complement; the 0.01
// slack absorbs versions stored as float32.
//
// A Resolver is immutable once built and safe for concurrent use.
package nanoschema

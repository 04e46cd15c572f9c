// Package stats accumulates weighted event counts and propagates their
// statistical uncertainties.
//
// A Count is a value with a one-sigma uncertainty. Independent counts combine
// in quadrature (kinematics.AddInQuadrature). A Counter fills a single-bin
// go-hep hbook.H1D and reads back the sum of weights together with
// sqrt(sum of squared weights); CountIf applies a selection to a slice of
// events and does the same in one call.
//
//	c, err := stats.CountIf(events, func(e Event) float64 { return e.Weight },
//		func(e Event) bool { return e.NJets >= 2 })
//	fmt.Println(c) // "1234.50 ± 35.14"
package stats

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/hepkin/stats"
)

func ExampleCounter() {
	c := stats.NewCounter()
	for _, w := range []float64{1.5, 0.5, 2} {
		_ = c.Fill(w)
	}
	fmt.Println(c.Count(), c.Entries())
	// Output: 4.00 ± 2.55 3
}

func ExampleCount_Ratio() {
	pass := stats.Count{Value: 30, Uncertainty: 3}
	total := stats.Count{Value: 60, Uncertainty: 4}
	eff, _ := pass.Ratio(total)
	fmt.Println(eff.Text(3))
	// Output: 0.500 ± 0.060
}

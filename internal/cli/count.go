package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepkin/format"
	"github.com/katalvlaran/hepkin/stats"
)

// weightDelims separates the values of --weights.
const weightDelims = ", ;\t\n"

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Weights string
	Scale   float64
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Weighted event count with its uncertainty",
		Long: `Sum the event weights given in --weights (separated by commas,
semicolons or blanks) and print Σw ± sqrt(Σw²), optionally multiplied by
--scale (e.g. a luminosity factor).

Example:
  hepkin count --weights "1.5, 0.5 2"
  hepkin count --weights "0.8;1.1;0.9" --scale 137`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := format.Tokenize(opts.Weights, weightDelims)
			weights := make([]float64, len(tokens))
			for i, tok := range tokens {
				w, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return fmt.Errorf("invalid weight %q: %w", tok, err)
				}
				weights[i] = w
			}
			slog.Debug("counting events", "entries", len(weights), "scale", opts.Scale)

			f := opts.formatter(cmd)
			c, err := stats.CountIf(weights, func(w float64) float64 { return w }, nil)
			if err != nil {
				return f.fail(err)
			}
			c = c.Scale(opts.Scale)
			return f.Success(countResult{
				Value:       jsonFloat(c.Value),
				Uncertainty: jsonFloat(c.Uncertainty),
				Entries:     len(weights),
				text:        c.Text(opts.Decimals),
			})
		},
	}

	cmd.Flags().StringVar(&opts.Weights, "weights", "", "event weights")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "factor applied to the count")

	return cmd
}

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepkin/kinematics"
)

// DeltaPhiOptions holds flags for the dphi command.
type DeltaPhiOptions struct {
	*RootOptions
	Phi1, Phi2 float64
	Signed     bool
}

// NewDeltaPhiCommand creates the dphi command.
func NewDeltaPhiCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeltaPhiOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dphi",
		Short: "Azimuthal separation of two directions",
		Long: `Print the azimuthal separation |φ2 − φ1| folded into [0, π], or the
signed separation in (−π, π] with --signed.

Example:
  hepkin dphi --phi1 3 --phi2 -3
  hepkin dphi --phi1 -3 --phi2 3 --signed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, d := "dphi", kinematics.DeltaPhi(opts.Phi1, opts.Phi2)
			if opts.Signed {
				name, d = "signed_dphi", kinematics.SignedDeltaPhi(opts.Phi1, opts.Phi2)
			}
			slog.Debug("delta phi", "phi1", opts.Phi1, "phi2", opts.Phi2, "result", d)
			return opts.formatter(cmd).Success(valueResult{Name: name, Value: jsonFloat(d), decimals: opts.Decimals})
		},
	}

	cmd.Flags().Float64Var(&opts.Phi1, "phi1", 0, "azimuth of the first object (rad)")
	cmd.Flags().Float64Var(&opts.Phi2, "phi2", 0, "azimuth of the second object (rad)")
	cmd.Flags().BoolVar(&opts.Signed, "signed", false, "print the signed separation")

	return cmd
}

// DeltaROptions holds flags for the dr command.
type DeltaROptions struct {
	*RootOptions
	Eta1, Eta2 float64
	Phi1, Phi2 float64
}

// NewDeltaRCommand creates the dr command.
func NewDeltaRCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeltaROptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dr",
		Short: "Angular distance ΔR in (η, φ)",
		Long: `Print ΔR = sqrt(Δη² + Δφ²) with Δφ folded into [0, π].

Example:
  hepkin dr --eta1 0.5 --phi1 3.1 --eta2 0.5 --phi2 -3.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dr := kinematics.DeltaR(opts.Eta1, opts.Eta2, opts.Phi1, opts.Phi2)
			return opts.formatter(cmd).Success(valueResult{Name: "dr", Value: jsonFloat(dr), decimals: opts.Decimals})
		},
	}

	cmd.Flags().Float64Var(&opts.Eta1, "eta1", 0, "pseudorapidity of the first object")
	cmd.Flags().Float64Var(&opts.Eta2, "eta2", 0, "pseudorapidity of the second object")
	cmd.Flags().Float64Var(&opts.Phi1, "phi1", 0, "azimuth of the first object (rad)")
	cmd.Flags().Float64Var(&opts.Phi2, "phi2", 0, "azimuth of the second object (rad)")

	return cmd
}

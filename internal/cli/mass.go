package cli

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepkin/kinematics"
)

// MassOptions holds flags for the mass command.
type MassOptions struct {
	*RootOptions
	E, Px, Py, Pz float64
	Tolerance     float64
	NaN           bool
}

// NewMassCommand creates the mass command.
func NewMassCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MassOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mass",
		Short: "Invariant mass of a four-momentum",
		Long: `Print the invariant mass of (E, px, py, pz).

A space-like or zero-energy input is rejected with exit code 1, unless
--nan is given, in which case NaN is printed. --tolerance lets a slightly
negative radicand (rounding noise) clamp to zero.

Example:
  hepkin mass --e 10 --pz 6
  hepkin mass --e 1 --px 1.000000000001 --tolerance 1e-9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kopts, err := policyOptions(opts.Tolerance, opts.NaN)
			if err != nil {
				return err
			}
			f := opts.formatter(cmd)
			m, err := kinematics.InvariantMass(opts.E, opts.Px, opts.Py, opts.Pz, kopts...)
			if err != nil {
				slog.Debug("invariant mass rejected", "error", err)
				return f.fail(err)
			}
			return f.Success(valueResult{Name: "mass", Value: jsonFloat(m), decimals: opts.Decimals})
		},
	}

	cmd.Flags().Float64Var(&opts.E, "e", 0, "energy")
	cmd.Flags().Float64Var(&opts.Px, "px", 0, "momentum x component")
	cmd.Flags().Float64Var(&opts.Py, "py", 0, "momentum y component")
	cmd.Flags().Float64Var(&opts.Pz, "pz", 0, "momentum z component")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", kinematics.DefaultTolerance, "negative radicand clamped to zero")
	cmd.Flags().BoolVar(&opts.NaN, "nan", false, "print NaN instead of failing on domain errors")

	return cmd
}

// TransverseMassOptions holds flags for the mt command.
type TransverseMassOptions struct {
	*RootOptions
	M1, Pt1, Phi1 float64
	M2, Pt2, Phi2 float64
	NaN           bool
}

// NewTransverseMassCommand creates the mt command.
func NewTransverseMassCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransverseMassOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mt",
		Short: "Two-body transverse mass",
		Long: `Print the transverse mass of two objects. Masses default to zero,
which selects the massless form.

Example:
  hepkin mt --pt1 50 --phi1 0 --pt2 50 --phi2 3.141592653589793
  hepkin mt --m1 0.105 --pt1 40 --phi1 0.2 --pt2 35 --phi2 2.9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kopts, err := policyOptions(kinematics.DefaultTolerance, opts.NaN)
			if err != nil {
				return err
			}
			f := opts.formatter(cmd)

			var mt float64
			if opts.M1 == 0 && opts.M2 == 0 {
				mt, err = kinematics.TransverseMassMassless(opts.Pt1, opts.Phi1, opts.Pt2, opts.Phi2, kopts...)
			} else {
				mt, err = kinematics.TransverseMass(opts.M1, opts.Pt1, opts.Phi1, opts.M2, opts.Pt2, opts.Phi2, kopts...)
			}
			if err != nil {
				slog.Debug("transverse mass rejected", "error", err)
				return f.fail(err)
			}
			return f.Success(valueResult{Name: "mt", Value: jsonFloat(mt), decimals: opts.Decimals})
		},
	}

	cmd.Flags().Float64Var(&opts.M1, "m1", 0, "mass of the first object")
	cmd.Flags().Float64Var(&opts.Pt1, "pt1", 0, "transverse momentum of the first object")
	cmd.Flags().Float64Var(&opts.Phi1, "phi1", 0, "azimuth of the first object (rad)")
	cmd.Flags().Float64Var(&opts.M2, "m2", 0, "mass of the second object")
	cmd.Flags().Float64Var(&opts.Pt2, "pt2", 0, "transverse momentum of the second object")
	cmd.Flags().Float64Var(&opts.Phi2, "phi2", 0, "azimuth of the second object (rad)")
	cmd.Flags().BoolVar(&opts.NaN, "nan", false, "print NaN instead of failing on domain errors")

	return cmd
}

// policyOptions translates the numeric policy flags into kinematics options.
// An invalid tolerance is a usage error.
func policyOptions(tolerance float64, nan bool) ([]kinematics.Option, error) {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		return nil, fmt.Errorf("invalid tolerance %g: must be finite and non-negative", tolerance)
	}
	kopts := []kinematics.Option{kinematics.WithTolerance(tolerance)}
	if nan {
		kopts = append(kopts, kinematics.WithNaNPropagation())
	}
	return kopts, nil
}

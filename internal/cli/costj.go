package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go-hep.org/x/hep/fmom"

	"github.com/katalvlaran/hepkin/kinematics"
)

// CosThetaOptions holds flags for the costj command.
type CosThetaOptions struct {
	*RootOptions
	LMinus, LPlus, Ref []float64
	NaN                bool
}

// NewCosThetaCommand creates the costj command.
func NewCosThetaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CosThetaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "costj",
		Short: "Helicity angle of a lepton pair",
		Long: `Print the cosine of the angle between the negative lepton and the
reference object in the rest frame of the lepton pair. Four-vectors are
given as px,py,pz,e.

Example:
  hepkin costj --lminus 3,0,4,5 --lplus -3,0,-4,5 --ref 0,0,6,6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lm, err := fourVector("lminus", opts.LMinus)
			if err != nil {
				return err
			}
			lp, err := fourVector("lplus", opts.LPlus)
			if err != nil {
				return err
			}
			ref, err := fourVector("ref", opts.Ref)
			if err != nil {
				return err
			}

			var kopts []kinematics.Option
			if opts.NaN {
				kopts = append(kopts, kinematics.WithNaNPropagation())
			}
			f := opts.formatter(cmd)
			c, err := kinematics.CosThetaJeffrey(&lm, &lp, &ref, kopts...)
			if err != nil {
				slog.Debug("helicity angle rejected", "error", err)
				return f.fail(err)
			}
			return f.Success(valueResult{Name: "costj", Value: jsonFloat(c), decimals: opts.Decimals})
		},
	}

	cmd.Flags().Float64SliceVar(&opts.LMinus, "lminus", nil, "negative lepton px,py,pz,e")
	cmd.Flags().Float64SliceVar(&opts.LPlus, "lplus", nil, "positive lepton px,py,pz,e")
	cmd.Flags().Float64SliceVar(&opts.Ref, "ref", nil, "reference object px,py,pz,e")
	cmd.Flags().BoolVar(&opts.NaN, "nan", false, "print NaN instead of failing on domain errors")
	_ = cmd.MarkFlagRequired("lminus")
	_ = cmd.MarkFlagRequired("lplus")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

// fourVector converts a px,py,pz,e flag value.
func fourVector(flag string, v []float64) (fmom.PxPyPzE, error) {
	if len(v) != 4 {
		return fmom.PxPyPzE{}, fmt.Errorf("--%s needs 4 components px,py,pz,e, got %d", flag, len(v))
	}
	return fmom.NewPxPyPzE(v[0], v[1], v[2], v[3]), nil
}

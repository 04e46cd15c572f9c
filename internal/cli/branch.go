package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepkin/nanoschema"
)

// BranchOptions holds flags for the branch command.
type BranchOptions struct {
	*RootOptions
	Version nanoschema.Version
	Table   string
}

// NewBranchCommand creates the branch command.
func NewBranchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BranchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "branch [field...]",
		Short: "Resolve NanoAOD branch names for a sample",
		Long: `Print the physical branch holding each logical field for the sample
described by --year, --fastsim, --preul and --nano. Without fields, every
field of the table is listed. --table replaces the built-in table with a
YAML file.

Example:
  hepkin branch MET_pt MET_phi --year 2017 --preul --fastsim
  hepkin branch --year 2023 --nano 12`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)
			res := nanoschema.Default()
			if opts.Table != "" {
				slog.Debug("loading branch table", "path", opts.Table)
				var err error
				if res, err = nanoschema.LoadFile(opts.Table); err != nil {
					return f.fail(err)
				}
			}

			fields := args
			if len(fields) == 0 {
				fields = res.Fields()
			}
			out := branchResult{Version: opts.Version.String(), Mappings: make([]branchMapping, 0, len(fields))}
			for _, field := range fields {
				out.Mappings = append(out.Mappings, branchMapping{Field: field, Branch: res.Resolve(field, opts.Version)})
			}
			return f.Success(out)
		},
	}

	cmd.Flags().IntVar(&opts.Version.Year, "year", 2018, "data-taking year")
	cmd.Flags().BoolVar(&opts.Version.Fastsim, "fastsim", false, "fast simulation sample")
	cmd.Flags().BoolVar(&opts.Version.PreUL, "preul", false, "pre-UL reprocessing")
	cmd.Flags().Float64Var(&opts.Version.NanoAOD, "nano", 9, "NanoAOD format version")
	cmd.Flags().StringVar(&opts.Table, "table", "", "YAML branch table (default: built-in)")

	return cmd
}

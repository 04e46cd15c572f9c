package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepkin/format"
)

// DefaultDecimals is the number of decimals printed in text output.
const DefaultDecimals = 4

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Decimals int

	started time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hepkin CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hepkin",
		Short: "hepkin - collider kinematics calculator",
		Long: `Evaluate collider kinematics from the command line: azimuthal
separations, invariant and transverse masses, helicity angles, NanoAOD
branch names and weighted event counts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Decimals < 0 {
				return fmt.Errorf("invalid decimals %d: must be non-negative", opts.Decimals)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			opts.started = time.Now()
			slog.Debug("running command", "command", cmd.Name(), "args", args)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			elapsed := int64(time.Since(opts.started).Seconds())
			slog.Debug("command finished", "command", cmd.Name(), "elapsed", format.HoursMinSec(elapsed))
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Decimals, "decimals", DefaultDecimals, "decimals in text output")

	// Add subcommands
	cmd.AddCommand(NewDeltaPhiCommand(opts))
	cmd.AddCommand(NewDeltaRCommand(opts))
	cmd.AddCommand(NewMassCommand(opts))
	cmd.AddCommand(NewTransverseMassCommand(opts))
	cmd.AddCommand(NewCosThetaCommand(opts))
	cmd.AddCommand(NewBranchCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))

	return cmd
}

// Run executes the command tree with args and returns the process exit code.
// Usage errors are printed to stderr; computation errors have already been
// reported on stdout by the command.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\nRun '%s --help' for usage.\n", err, cmd.Name())
	}
	return GetExitCode(err)
}

// setupLogging installs a text slog handler on w; Debug level when verbose.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(name string) bool {
	for _, f := range ValidFormats {
		if f == name {
			return true
		}
	}
	return false
}

// Package cli implements the minos command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minos/internal/logging"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/stat"
)

var version = "0.1.0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format     string // "text" | "json"
	NoColor    bool
	LogLevel   string
	Confidence float64 // 0 means one sigma
	Digits     int

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the minos CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "minos",
		Short:   "Asymmetric uncertainty propagation",
		Version: version,
		Long: `minos combines measurements with asymmetric errors (central +up -lo)
using profile-likelihood (Minos) intervals, and builds such measurements
from Poisson counts and binomial efficiencies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Confidence != 0 && !(opts.Confidence > 0 && opts.Confidence < 1) {
				return fmt.Errorf("invalid --confidence %v: %w", opts.Confidence, stat.ErrBadConfidence)
			}
			if opts.Digits < 0 || opts.Digits > 15 {
				return fmt.Errorf("invalid --digits %d: must lie in [0, 15]", opts.Digits)
			}
			level, err := logging.ParseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			opts.logger = logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, NoColor: opts.NoColor})
			measurement.SetLogger(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable coloured output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().Float64VarP(&opts.Confidence, "confidence", "c", 0, "confidence level in (0, 1); default one sigma")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", 4, "decimal places in text output")

	cmd.AddCommand(NewLevelCommand(opts))
	cmd.AddCommand(NewSigmaCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewProdCommand(opts))
	cmd.AddCommand(NewPoissonCommand(opts))
	cmd.AddCommand(NewEfficiencyCommand(opts))
	cmd.AddCommand(NewCombineCommand(opts))

	return cmd
}

// Execute runs the command tree on os.Args and reports a failure on stderr.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.New(color.FgRed).Sprint("Error:"), err)
		return err
	}

	return nil
}

// confidence resolves the --confidence flag.
func (o *RootOptions) confidence() float64 {
	if o.Confidence == 0 {
		return stat.OneSigmaLevel()
	}
	return o.Confidence
}

// log returns the configured logger, or a warn-level stderr logger when
// PersistentPreRunE has not run.
func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return o.logger
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

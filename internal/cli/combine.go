package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minos/config"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/solver"
)

type combineFunc func([]measurement.Measurement, ...measurement.Option) (measurement.Measurement, error)

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	return newCombineOpCommand(rootOpts, "sum", "Sum of independent measurements", measurement.SumUncorrelated)
}

// NewProdCommand creates the prod command.
func NewProdCommand(rootOpts *RootOptions) *cobra.Command {
	return newCombineOpCommand(rootOpts, "prod", "Product of independent measurements", measurement.ProdUncorrelated)
}

func newCombineOpCommand(rootOpts *RootOptions, name, short string, fn combineFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <c[,up[,lo]]>...",
		Short: short,
		Long: short + `.

Each argument is a comma separated list: "c" (exact), "c,e" (symmetric)
or "c,up,lo". The interval is the profile-likelihood (Minos) interval at
--confidence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseMeasurements(args)
			if err != nil {
				return err
			}
			m, solveErr := fn(list, measurement.WithConfidence(rootOpts.confidence()))
			if err = warnOnly(rootOpts, name, solveErr); err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Measurements([]Record{NewRecord(name, m, solveErr)})
		},
	}
}

// NewCombineCommand creates the combine command for measurement documents.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "combine <file>",
		Short: "Evaluate the combinations of a YAML or JSON measurement document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(args[0], config.WithPath(path))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("confidence") {
				doc.Confidence = rootOpts.confidence()
			}
			results, err := doc.Evaluate()
			if err != nil {
				return err
			}

			records := make([]Record, len(results))
			for i, r := range results {
				if r.Warning != nil {
					_ = warnOnly(rootOpts, r.Name, r.Warning)
				}
				records[i] = NewRecord(r.Name, r.Value, r.Warning)
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Measurements(records)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "gjson path of the document inside the file")

	return cmd
}

// warnOnly logs solver non-convergence and swallows it; any other error is
// returned unchanged.
func warnOnly(rootOpts *RootOptions, name string, err error) error {
	if err == nil || !errors.Is(err, solver.ErrNotConverged) {
		return err
	}
	rootOpts.log().Warn("result did not converge, printing best estimate",
		slog.String("result", name), slog.Any("err", err))
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minos/efficiency"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/poisson"
)

// Factory method names accepted by --method.
const (
	methodMinos          = "minos"
	methodLazy           = "lazy"
	methodCMSStatCom     = "cmsstatcom"
	methodBayesian       = "bayesian"
	methodClopperPearson = "clopper-pearson"
)

// NewPoissonCommand creates the poisson command.
func NewPoissonCommand(rootOpts *RootOptions) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "poisson <observed>",
		Short: "Uncertainty of a Poisson event count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			var build func(obs, cl float64) (measurement.Measurement, error)
			switch strings.ToLower(method) {
			case methodMinos:
				build = poisson.Minos
			case methodLazy:
				build = poisson.Lazy
			case methodCMSStatCom:
				build = poisson.CMSStatCom
			default:
				return fmt.Errorf("unknown poisson method %q: must be one of %v", method,
					[]string{methodMinos, methodLazy, methodCMSStatCom})
			}

			m, solveErr := build(vals[0], rootOpts.confidence())
			if err = warnOnly(rootOpts, "poisson", solveErr); err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Measurements([]Record{NewRecord("poisson", m, solveErr)})
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", methodMinos, "minos|lazy|cmsstatcom")

	return cmd
}

// NewEfficiencyCommand creates the efficiency command.
func NewEfficiencyCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		method      string
		interval    string
		alpha, beta float64
	)

	cmd := &cobra.Command{
		Use:   "efficiency <passed> <total>",
		Short: "Uncertainty of a binomial efficiency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			passed, total, cl := vals[0], vals[1], rootOpts.confidence()

			var m measurement.Measurement
			var solveErr error
			switch strings.ToLower(method) {
			case methodMinos:
				m, solveErr = efficiency.Minos(passed, total, cl)
			case methodBayesian:
				im, perr := efficiency.ParseMethod(interval)
				if perr != nil {
					return perr
				}
				m, solveErr = efficiency.Bayesian(passed, total, cl, im, alpha, beta)
			case methodClopperPearson:
				m, solveErr = efficiency.ClopperPearson(passed, total, cl)
			case methodLazy:
				m, solveErr = efficiency.Lazy(passed, total, cl)
			default:
				return fmt.Errorf("unknown efficiency method %q: must be one of %v", method,
					[]string{methodMinos, methodBayesian, methodClopperPearson, methodLazy})
			}

			if err = warnOnly(rootOpts, "efficiency", solveErr); err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Measurements([]Record{NewRecord("efficiency", m, solveErr)})
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", methodMinos, "minos|bayesian|clopper-pearson|lazy")
	cmd.Flags().StringVar(&interval, "interval", efficiency.ShortestInterval.String(), "bayesian interval: shortest|central")
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "bayesian prior Beta(alpha, beta): alpha")
	cmd.Flags().Float64Var(&beta, "beta", 1, "bayesian prior Beta(alpha, beta): beta")

	return cmd
}

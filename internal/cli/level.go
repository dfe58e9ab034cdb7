package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minos/stat"
)

// NewLevelCommand creates the level command: sigma → confidence level.
func NewLevelCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "level <sigma>...",
		Short: "Confidence level covered by ±sigma of a normal distribution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigmas, err := parseFloats(args)
			if err != nil {
				return err
			}
			records := make([]LevelRecord, len(sigmas))
			for i, s := range sigmas {
				records[i] = LevelRecord{Sigma: s, Confidence: stat.ConfidenceLevel(s)}
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Levels(records)
		},
	}
}

// NewSigmaCommand creates the sigma command: confidence level → sigma.
func NewSigmaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sigma <level>...",
		Short: "Sigma interval matching a confidence level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := parseFloats(args)
			if err != nil {
				return err
			}
			records := make([]LevelRecord, len(levels))
			for i, cl := range levels {
				s, err := stat.SigmaInterval(cl)
				if err != nil {
					return err
				}
				records[i] = LevelRecord{Sigma: s, Confidence: cl}
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).Sigmas(records)
		},
	}
}

package cli

import (
	"github.com/masslab/oimlcal/internal/config"
	"github.com/spf13/cobra"
)

func newBothCmd(cfg *config.Config) *cobra.Command {
	balanceFlags := &minMassFlags{}
	selectionFlags := &classFlags{}

	cmd := &cobra.Command{
		Use:   "both",
		Short: "Run the minimum-mass and class-selection calculations together",
		Long: `Runs both calculations in one invocation: the minimum sample mass for
the balance characterization, then the reference-class selection for the
given nominal mass. Useful when qualifying a balance/weight pair in a
single step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMinMass(cmd, balanceFlags); err != nil {
				return err
			}
			return runClass(cmd, selectionFlags, balanceFlags)
		},
	}

	balanceFlags.register(cmd, cfg)
	selectionFlags.register(cmd, cfg)
	cmd.MarkFlagRequired("s")
	cmd.MarkFlagRequired("mass")

	return cmd
}

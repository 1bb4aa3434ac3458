package cli

import (
	"fmt"

	"github.com/masslab/oimlcal/internal/config"
	"github.com/masslab/oimlcal/internal/logging"
	"github.com/masslab/oimlcal/internal/oiml"
	"github.com/spf13/cobra"
)

// minMassFlags holds the balance characterization shared by the minmass
// and both commands.
type minMassFlags struct {
	s            float64
	d            float64
	rRel         float64
	k            float64
	noResolution bool
}

func (f *minMassFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64Var(&f.s, "s", 0, "repeatability standard deviation s (g)")
	cmd.Flags().Float64Var(&f.d, "d", 0, "balance display division d (g)")
	cmd.Flags().Float64Var(&f.rRel, "rrel", cfg.Calc.RelUncertainty, "target relative uncertainty (0.001 = 0.1%)")
	cmd.Flags().Float64Var(&f.k, "k", cfg.Calc.CoverageK, "coverage factor k")
	cmd.Flags().BoolVar(&f.noResolution, "no-resolution", !cfg.Calc.IncludeResolution,
		"exclude the display division from the effective uncertainty")
}

func (f *minMassFlags) balance() oiml.Balance {
	return oiml.Balance{
		Repeatability:     f.s,
		Division:          f.d,
		IncludeResolution: !f.noResolution,
	}
}

func newMinMassCmd(cfg *config.Config) *cobra.Command {
	flags := &minMassFlags{}

	cmd := &cobra.Command{
		Use:   "minmass",
		Short: "Minimum sample mass for a target relative uncertainty",
		Long: `Combines the balance repeatability s and display division d into an
effective standard uncertainty, then reports the smallest sample mass for
which the expanded uncertainty k*s_eff stays within the relative budget:
m_min = k * s_eff / r_rel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinMass(cmd, flags)
		},
	}

	flags.register(cmd, cfg)
	cmd.MarkFlagRequired("s")

	return cmd
}

func runMinMass(cmd *cobra.Command, flags *minMassFlags) error {
	logger := logging.WithFields(cmd.Context(),
		"s_g", flags.s,
		"d_g", flags.d,
		"r_rel", flags.rRel,
		"k", flags.k,
	)

	b := flags.balance()
	mMin, err := b.MinimumMass(flags.rRel, flags.k)
	if err != nil {
		return fmt.Errorf("computing minimum mass: %w", err)
	}

	logger.Debug("minimum mass computed", "s_eff_g", b.EffectiveStd(), "m_min_g", mMin)
	fmt.Fprintf(cmd.OutOrStdout(), "m_min (g) = %.6f  [k=%g, r_rel=%g, s=%g, d=%g]\n",
		mMin, flags.k, flags.rRel, flags.s, flags.d)
	return nil
}

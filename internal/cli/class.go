package cli

import (
	"errors"
	"fmt"

	"github.com/masslab/oimlcal/internal/config"
	"github.com/masslab/oimlcal/internal/logging"
	"github.com/masslab/oimlcal/internal/oiml"
	"github.com/spf13/cobra"
)

// classFlags holds the inputs for class selection.
type classFlags struct {
	mass         float64
	tur          float64
	thresholdStd float64
	thresholdMPE float64
	tablePath    string
}

func (f *classFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64Var(&f.mass, "mass", 0, "nominal mass of the reference weight (g)")
	cmd.Flags().Float64Var(&f.tur, "tur", cfg.Calc.TUR,
		"target test uncertainty ratio; derives the budget as u_balance/TUR (needs --s and --d)")
	cmd.Flags().Float64Var(&f.thresholdStd, "threshold-std", 0, "direct standard-uncertainty budget (g)")
	cmd.Flags().Float64Var(&f.thresholdMPE, "threshold-mpe", 0, "direct MPE budget (mg)")
	cmd.Flags().StringVar(&f.tablePath, "table", cfg.Table.Path,
		"CSV MPE table (mass_g plus class columns, MPE in mg); empty uses the built-in demo table")
}

func newClassCmd(cfg *config.Config) *cobra.Command {
	balanceFlags := &minMassFlags{}
	flags := &classFlags{}

	cmd := &cobra.Command{
		Use:   "class",
		Short: "Loosest reference-weight class meeting an error budget",
		Long: `Scans the accuracy classes E2..M3 in order and reports the first one
whose maximum permissible error at the given nominal mass satisfies the
error budget. The budget comes from --threshold-std, --threshold-mpe, or
is derived from --tur and the balance characterization.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClass(cmd, flags, balanceFlags)
		},
	}

	balanceFlags.register(cmd, cfg)
	flags.register(cmd, cfg)
	cmd.MarkFlagRequired("mass")

	return cmd
}

func runClass(cmd *cobra.Command, flags *classFlags, balanceFlags *minMassFlags) error {
	if flags.mass <= 0 {
		return fmt.Errorf("--mass (%g) must be positive", flags.mass)
	}

	threshold, err := resolveThreshold(cmd, flags, balanceFlags)
	if err != nil {
		return err
	}

	table, err := resolveTable(cmd, flags.tablePath)
	if err != nil {
		return err
	}

	logger := logging.WithFields(cmd.Context(), "mass_g", flags.mass, "threshold", threshold.String())
	logger.Debug("selecting reference class", "denominations", table.Len())

	class, found, err := table.SelectClass(flags.mass, threshold, nil)
	if err != nil {
		return fmt.Errorf("selecting class: %w", err)
	}
	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "No class in the table satisfies the threshold for %g g.\n", flags.mass)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recommended class for %g g: %s (%s)\n", flags.mass, class, threshold)
	return nil
}

// resolveThreshold turns the flag combination into a single tagged
// threshold. Precedence: --threshold-std, then --threshold-mpe, then
// --tur derivation. Supplying none is a usage error, never a default.
func resolveThreshold(cmd *cobra.Command, flags *classFlags, balanceFlags *minMassFlags) (oiml.Threshold, error) {
	switch {
	case cmd.Flags().Changed("threshold-std"):
		if flags.thresholdStd <= 0 {
			return oiml.Threshold{}, fmt.Errorf("--threshold-std (%g) must be positive", flags.thresholdStd)
		}
		return oiml.StdThreshold(flags.thresholdStd), nil

	case cmd.Flags().Changed("threshold-mpe"):
		if flags.thresholdMPE <= 0 {
			return oiml.Threshold{}, fmt.Errorf("--threshold-mpe (%g) must be positive", flags.thresholdMPE)
		}
		return oiml.MPEThreshold(flags.thresholdMPE), nil

	case flags.tur > 0:
		if !cmd.Flags().Changed("s") || !cmd.Flags().Changed("d") {
			return oiml.Threshold{}, errors.New("--tur needs --s and --d to derive the balance uncertainty")
		}
		uBal := oiml.EffectiveStd(balanceFlags.s, balanceFlags.d, !balanceFlags.noResolution)
		th, err := oiml.ThresholdFromTUR(uBal, flags.tur)
		if err != nil {
			return oiml.Threshold{}, err
		}
		logging.FromContext(cmd.Context()).Debug("derived threshold from TUR",
			"u_balance_g", uBal, "tur", flags.tur, "threshold_g", th.Value())
		return th, nil

	default:
		return oiml.Threshold{}, errors.New("give --threshold-std, --threshold-mpe, or --tur")
	}
}

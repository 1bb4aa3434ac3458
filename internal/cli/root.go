// Package cli implements the oimlcal command tree.
//
// The CLI is a thin invocation layer: it parses flags, resolves the MPE
// table and the error-budget threshold, then delegates to the oiml
// calculators and prints their results. All domain logic lives in
// internal/oiml.
package cli

import (
	"github.com/masslab/oimlcal/internal/config"
	"github.com/masslab/oimlcal/internal/logging"
	"github.com/masslab/oimlcal/internal/oiml"
	"github.com/masslab/oimlcal/internal/tableio"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the oimlcal command tree. Configuration supplies the
// flag defaults; flags always win over the environment.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oimlcal",
		Short: "Balance calibration helper (OIML R111)",
		Long: `oimlcal computes the minimum sample mass for a target relative
uncertainty and selects the reference-weight accuracy class that meets an
error budget, using an OIML R111 maximum-permissible-error table.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newMinMassCmd(cfg))
	rootCmd.AddCommand(newClassCmd(cfg))
	rootCmd.AddCommand(newBothCmd(cfg))

	return rootCmd
}

// resolveTable loads the CSV table at path, or falls back to the embedded
// demonstration table when path is empty.
func resolveTable(cmd *cobra.Command, path string) (oiml.Table, error) {
	logger := logging.FromContext(cmd.Context())

	if path == "" {
		logger.Debug("using embedded demo MPE table")
		return oiml.DemoTable(), nil
	}

	logger.Debug("loading MPE table", "path", path)
	return tableio.LoadFile(path)
}

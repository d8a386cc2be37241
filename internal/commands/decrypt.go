package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gofish/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec", "d"},
		Short:   "Decrypt files and directories in place",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}
}

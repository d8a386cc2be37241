package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gofish/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc", "e"},
		Short:   "Encrypt files and directories in place",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}
}

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/gofish/internal/config"
	"github.com/idelchi/gofish/internal/logic"
)

// run prompts for a missing passphrase and hands over to the processing logic.
func run(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Passphrase == "" {
		passphrase, err := promptPassphrase(os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		cfg.Passphrase = passphrase
	}

	return logic.Run(cmd.Context(), cfg)
}

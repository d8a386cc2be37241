// Package commands provides the command-line interface for the gofish tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - checking include/exclude patterns
//
// The package handles command-line parsing, configuration validation,
// passphrase prompting and environment variable binding through cobra and viper.
package commands

import (
	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/spf13/cobra"

	"github.com/idelchi/gofish/internal/config"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Paths,
// unmarshals flags, environment and config file into cfg and validates the result.
// With --show the configuration is printed and cobraext.ErrExitGracefully returned.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Paths = []string{"."}
		} else {
			cfg.Paths = args
		}

		return cobraext.Validate(cfg, cfg)
	}
}

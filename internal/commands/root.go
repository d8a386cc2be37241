package commands

import (
	"fmt"
	"runtime"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gofish/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// Flags declared here are inherited by every subcommand and can also be set
// through GOFISH_* environment variables or a config file.
// Flags take precedence over the environment, which takes precedence over the config file.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, readConfigFile)

	root.Use = "gofish [flags] command [flags] [paths...]"
	root.Short = "Encrypt or decrypt files and directories in place"
	root.Long = `Encrypt or decrypt files and directory trees in place with Blowfish, Twofish or Threefish.

The key is derived from a passphrase, or from the contents of a file when the passphrase
names one. Every block is transformed independently and files are rewritten in place:
there is no authentication, and trailing zero bytes of the last block are dropped.

Threefish block size is given in bytes (32, 64, 128) or bits (256, 512, 1024).`

	flags := root.PersistentFlags()

	flags.StringP("algorithm", "a", "threefish", "Cipher: blowfish (bf), twofish (tw) or threefish (tf)")
	flags.IntP("block-size", "b", 128, "Threefish block size in bytes or bits") //nolint:mnd
	flags.StringP("passphrase", "p", "", "Passphrase, or path to a file containing it (prompted if empty)")

	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of directories walked concurrently, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Log traversal details")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("progress", false, "Show a progress spinner instead of per-file output")
	flags.Bool("dry", false, "Show which files would be processed without modifying them")
	flags.Bool("preserve-timestamps", false, "Keep the modification time of rewritten files")

	flags.StringSliceP("include", "i", nil, "Only process files whose path matches these patterns")
	flags.StringSliceP("exclude", "e", nil, "Skip files whose path matches these patterns")
	flags.String("include-from", "", "Read include patterns from a JSONC file")
	flags.String("exclude-from", "", "Read exclude patterns from a JSONC file")

	flags.String("config", "", "Read configuration from a YAML, TOML or JSON file")
	flags.BoolP("show", "s", false, "Show the configuration and exit")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}

// readConfigFile merges the file named by --config into viper, below flags and environment.
func readConfigFile(_ *cobra.Command, _ []string) error {
	file := viper.GetString("config")
	if file == "" {
		return nil
	}

	viper.SetConfigFile(file)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %q: %w", file, err)
	}

	return nil
}

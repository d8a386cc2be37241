// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage marks configuration errors caused by invalid user input.
var ErrUsage = errors.New("usage error")

// Config holds the application configuration.
type Config struct {
	// Show prints the configuration and exits
	Show bool `mapstructure:"show"`

	// File is an optional configuration file read by viper
	File string `mapstructure:"config"`

	// Algorithm is the cipher family name or alias
	Algorithm string `mapstructure:"algorithm" validate:"required"`

	// BlockSize is the Threefish block width in bytes or bits
	BlockSize int `mapstructure:"block-size" validate:"gt=0"`

	// Passphrase is the literal passphrase or a path to a file holding it
	Passphrase string `mapstructure:"passphrase" mask:"fixed"`

	// Parallel caps the number of concurrently walked directories
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Output
	Quiet    bool `mapstructure:"quiet"    validate:"exclusive=Verbose"`
	Verbose  bool `mapstructure:"verbose"`
	Stats    bool `mapstructure:"stats"`
	Progress bool `mapstructure:"progress"`

	// Dry walks and reports without modifying files
	Dry bool `mapstructure:"dry"`

	// PreserveTimestamps restores the modification time of rewritten files
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Filtering of files found under directories
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from"`

	// Command-specific
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Paths []string `mapstructure:"-" validate:"min=1"`
}

// Display reports whether the configuration should be shown instead of run.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags.
// It returns a wrapped ErrUsage if any validation rule is violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

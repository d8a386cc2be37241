// Command gofish encrypts or decrypts files and directory trees in place.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gofish/internal/commands"
	"github.com/idelchi/gofish/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := &config.Config{}

	err := commands.NewRootCommand(cfg, version).ExecuteContext(ctx)

	stop()

	if err != nil && !errors.Is(err, cobraext.ErrExitGracefully) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

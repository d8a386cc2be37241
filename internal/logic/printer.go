package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/idelchi/gofish/internal/config"
	"github.com/idelchi/gofish/internal/walker"
)

// printer consumes walker results, prints them and keeps the counters for the stats.
// The counters may only be read after the channel returned by start is closed.
type printer struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
	dry    bool
	bar    *progressbar.ProgressBar

	processed int
	errored   int
	totalSize int64
}

func newPrinter(cfg *config.Config) *printer {
	p := &printer{
		out:    os.Stdout,
		errOut: os.Stderr,
		quiet:  cfg.Quiet,
		dry:    cfg.Dry,
	}

	if cfg.Progress && !cfg.Quiet {
		p.bar = progressbar.NewOptions64(
			-1,
			progressbar.OptionSetDescription("Processing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionShowIts(),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionThrottle(100*time.Millisecond), //nolint:mnd
		)
	}

	return p
}

// start drains results on its own goroutine until the channel is closed.
func (p *printer) start(results <-chan walker.Result) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			p.print(result)
		}

		if p.bar != nil {
			_ = p.bar.Finish() //nolint:errcheck // cosmetic output
			fmt.Fprintln(p.errOut)
		}
	}()

	return done
}

func (p *printer) print(result walker.Result) {
	if result.Error != nil {
		p.errored++

		fmt.Fprintf(p.errOut, "Error processing %q: %v\n", result.Path, result.Error)

		return
	}

	p.processed++
	p.totalSize += result.Size

	switch {
	case p.bar != nil:
		_ = p.bar.Add(1) //nolint:errcheck // cosmetic output
	case p.quiet:
	case p.dry:
		fmt.Fprintf(p.out, "Would process %q\n", result.Path) //nolint:forbidigo
	default:
		fmt.Fprintf(p.out, "Processed %q\n", result.Path) //nolint:forbidigo
	}
}

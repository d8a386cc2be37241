// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/absfs/absfs"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/gofish/internal/config"
	"github.com/idelchi/gofish/internal/encryption"
	"github.com/idelchi/gofish/internal/fileutil"
	"github.com/idelchi/gofish/internal/filter"
	"github.com/idelchi/gofish/internal/walker"
)

// resultBuffer bounds how far the walker can run ahead of the printer.
const resultBuffer = 64

// Run is the main logic of the application.
// The key is derived before any file is touched, so an invalid algorithm,
// block size or unreadable passphrase file leaves the tree unchanged.
func Run(ctx context.Context, cfg *config.Config) error {
	return RunFS(ctx, fileutil.NewOS(""), cfg)
}

// RunFS is Run on an arbitrary filesystem.
func RunFS(ctx context.Context, fsys absfs.FileSystem, cfg *config.Config) error {
	start := time.Now()
	logger := newLogger(cfg)

	flt, err := buildFilter(fsys, cfg)
	if err != nil {
		return err
	}

	family, err := encryption.ParseFamily(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("selecting cipher: %w", err)
	}

	cipher, err := encryption.Derive(fsys, family, cfg.BlockSize, cfg.Passphrase)
	if err != nil {
		return fmt.Errorf("deriving key: %w", err)
	}

	direction := encryption.Encrypt
	if cfg.Decrypt {
		direction = encryption.Decrypt
	}

	logger.Debug("cipher ready",
		"algorithm", cipher.Algorithm().String(),
		"block_size", cipher.BlockSize(),
		"direction", direction.String(),
	)

	var transformer walker.Transformer = encryption.NewEngine(fsys, cipher, direction, cfg.PreserveTimestamps)
	if cfg.Dry {
		transformer = dryRun(fsys)
	}

	results := make(chan walker.Result, resultBuffer)

	out := newPrinter(cfg)
	done := out.start(results)

	w := walker.New(fsys, transformer, walker.Options{
		Parallel: cfg.Parallel,
		Filter:   flt,
		Logger:   logger,
		Results:  results,
	})

	err = w.Run(ctx, cfg.Paths)

	close(results)

	<-done

	if cfg.Stats {
		printStats(w.Scanned(), w.Excluded(), out.processed, out.errored, out.totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running %s: %w", direction, err)
	}

	return nil
}

// dryRun reports the current size of each file without modifying it.
func dryRun(fsys absfs.FileSystem) walker.TransformFunc {
	return func(path string) (int64, error) {
		info, err := fsys.Stat(path)
		if err != nil {
			return 0, fmt.Errorf("%w: stat %q: %w", encryption.ErrIO, path, err)
		}

		return info.Size(), nil
	}
}

// buildFilter merges CLI and file-based include/exclude patterns into one filter.
func buildFilter(fsys absfs.FileSystem, cfg *config.Config) (*filter.Filter, error) {
	includes, excludes, err := loadPatterns(fsys, cfg)
	if err != nil {
		return nil, err
	}

	flt, err := filter.New(includes, excludes)
	if err != nil {
		return nil, fmt.Errorf("building filter: %w", err)
	}

	return flt, nil
}

// loadPatterns merges CLI and file-based include/exclude patterns.
func loadPatterns(fsys absfs.FileSystem, cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(fsys, cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(fsys, cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	return filter.Normalize(includes), filter.Normalize(excludes), nil
}

// newLogger returns the traversal logger: debug output with --verbose, warnings otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn

	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}

package logic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/absfs/absfs"

	"github.com/idelchi/gofish/internal/config"
	"github.com/idelchi/gofish/internal/fileutil"
	"github.com/idelchi/gofish/internal/filter"
	"github.com/idelchi/gofish/internal/walker"
	"github.com/idelchi/gofish/pkg/pathmatch"
)

// ErrUnmatchedPatterns is returned by RunCheck when a pattern matched no file.
var ErrUnmatchedPatterns = errors.New("pattern(s) matched no files")

// RunCheck validates that every include/exclude pattern matches at least one file.
// Files are discovered exactly as encrypt and decrypt would discover them, but nothing is modified.
func RunCheck(ctx context.Context, cfg *config.Config) error {
	return RunCheckFS(ctx, fileutil.NewOS(""), cfg, os.Stderr)
}

// RunCheckFS is RunCheck on an arbitrary filesystem, reporting to out.
func RunCheckFS(ctx context.Context, fsys absfs.FileSystem, cfg *config.Config, out io.Writer) error {
	includes, excludes, err := loadPatterns(fsys, cfg)
	if err != nil {
		return err
	}

	if len(includes) == 0 && len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, err := collectFiles(ctx, fsys, cfg)
	if err != nil {
		return err
	}

	var failures int

	failures += checkPatterns(out, "include", includes, candidates, cfg.Quiet)
	failures += checkPatterns(out, "exclude", excludes, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%d %w", failures, ErrUnmatchedPatterns)
	}

	return nil
}

// collectFiles walks all paths without a filter and returns every file found.
func collectFiles(ctx context.Context, fsys absfs.FileSystem, cfg *config.Config) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)

	seen := make(map[string]struct{})

	collect := walker.TransformFunc(func(path string) (int64, error) {
		clean := filter.Clean(path)

		mu.Lock()
		defer mu.Unlock()

		if _, ok := seen[clean]; !ok {
			seen[clean] = struct{}{}
			paths = append(paths, clean)
		}

		return 0, nil
	})

	w := walker.New(fsys, collect, walker.Options{
		Parallel: cfg.Parallel,
		Logger:   newLogger(cfg),
	})

	if err := w.Run(ctx, cfg.Paths); err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}

	return paths, nil
}

// checkPatterns tests each pattern individually against candidates.
// Returns the number of patterns that matched zero files.
func checkPatterns(out io.Writer, kind string, patterns, candidates []string, quiet bool) int {
	var failures int

	for _, pattern := range patterns {
		matcher, err := pathmatch.NewMatcher([]string{pattern})
		if err != nil {
			fmt.Fprintf(out, "%s: %s: invalid pattern: %v\n", kind, pattern, err)

			failures++

			continue
		}

		var count int

		for _, path := range candidates {
			if matcher.MatchAny(path) {
				count++
			}
		}

		if count == 0 {
			fmt.Fprintf(out, "%s: %s: 0 files (ERROR)\n", kind, pattern)

			failures++
		} else if !quiet {
			fmt.Fprintf(out, "%s: %s: %d files\n", kind, pattern, count)
		}
	}

	return failures
}

// Package walker visits files and directory trees and hands every regular file to a Transformer.
//
// Each directory is a unit of work that may run on its own goroutine; the files inside a
// directory are processed one after another by the unit that listed them.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/absfs/absfs"

	"github.com/idelchi/gofish/internal/encryption"
)

// DSStore is the macOS directory metadata file, never processed.
const DSStore = ".DS_Store"

// Transformer processes one file and returns its resulting size.
type Transformer interface {
	Transform(path string) (int64, error)
}

// TransformFunc adapts a function to the Transformer interface.
type TransformFunc func(path string) (int64, error)

// Transform calls f(path).
func (f TransformFunc) Transform(path string) (int64, error) {
	return f(path)
}

// Matcher decides whether a file found under a directory is processed.
type Matcher interface {
	Match(path string) bool
}

// Options configures a Walker.
type Options struct {
	// Parallel caps the number of directory units running on their own goroutine.
	// Zero or less means no cap.
	Parallel int

	// Filter is applied to files discovered inside directories. Explicit file paths bypass it.
	Filter Matcher

	// Logger receives traversal diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger

	// Results receives one Result per processed file, if set.
	// The caller must drain it until Run returns.
	Results chan<- Result
}

// Walker runs a Transformer over paths.
type Walker struct {
	fs          absfs.FileSystem
	transformer Transformer
	parallel    int
	filter      Matcher
	logger      *slog.Logger
	results     chan<- Result

	scanned  atomic.Int64
	excluded atomic.Int64
}

// New creates a Walker over fsys.
func New(fsys absfs.FileSystem, transformer Transformer, opts Options) *Walker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Walker{
		fs:          fsys,
		transformer: transformer,
		parallel:    opts.Parallel,
		filter:      opts.Filter,
		logger:      logger,
		results:     opts.Results,
	}
}

// Scanned returns the number of files found so far, excluded ones included.
func (w *Walker) Scanned() int {
	return int(w.scanned.Load())
}

// Excluded returns the number of files skipped by the filter or the .DS_Store rule.
func (w *Walker) Excluded() int {
	return int(w.excluded.Load())
}

// Run processes every path. Files are transformed on the calling goroutine and any
// failure stops the run. Directories become units of work; a failing unit stops only
// itself and its error is returned together with the others once every unit has finished.
// Paths that are neither directories nor regular files, such as pipes and devices, are skipped.
func (w *Walker) Run(ctx context.Context, paths []string) error {
	parent := ctx

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	units := newScope(ctx, w.parallel)

	var mainErr error

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			break
		}

		info, err := w.fs.Stat(path)
		if err != nil {
			mainErr = fmt.Errorf("%w: stat %q: %w", encryption.ErrIO, path, err)

			break
		}

		if info.IsDir() {
			w.logger.Debug("got directory", "path", path)

			units.spawn(func(ctx context.Context) error {
				return w.walkDir(ctx, units, path)
			})

			continue
		}

		if !info.Mode().IsRegular() {
			w.logger.Warn("skipping", "path", path, "reason", "not a regular file", "mode", info.Mode().String())

			continue
		}

		if err := w.visit(path); err != nil {
			mainErr = err

			break
		}
	}

	if mainErr != nil {
		cancel()
	}

	unitErr := units.wait()

	w.logger.Debug("run finished",
		"spawned", units.spawned.Load(),
		"inlined", units.inlined.Load(),
		"scanned", w.Scanned(),
		"excluded", w.Excluded(),
	)

	return errors.Join(mainErr, unitErr, parent.Err())
}

// walkDir processes the files of dir and spawns a unit per subdirectory.
func (w *Walker) walkDir(ctx context.Context, units *scope, dir string) error {
	entries, err := w.readDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		path := filepath.Join(dir, name)

		if entry.IsDir() {
			w.logger.Debug("got subdirectory", "path", path)

			units.spawn(func(ctx context.Context) error {
				return w.walkDir(ctx, units, path)
			})

			continue
		}

		if !w.regular(path, entry) {
			continue
		}

		if name == DSStore {
			w.scanned.Add(1)
			w.excluded.Add(1)
			w.logger.Debug("skipping", "path", path, "reason", "macOS metadata")

			continue
		}

		if w.filter != nil && !w.filter.Match(path) {
			w.scanned.Add(1)
			w.excluded.Add(1)
			w.logger.Debug("skipping", "path", path, "reason", "filtered")

			continue
		}

		if err := w.visit(path); err != nil {
			return err
		}
	}

	return nil
}

// regular reports whether a non-directory entry is a regular file to process.
// Symlinked files are followed, symlinked directories are not descended into.
func (w *Walker) regular(path string, entry fs.FileInfo) bool {
	mode := entry.Mode()

	switch {
	case mode.IsRegular():
		return true
	case mode&fs.ModeSymlink != 0:
		target, err := w.fs.Stat(path)
		if err != nil {
			w.logger.Warn("skipping", "path", path, "reason", "dangling symlink")

			return false
		}

		if target.IsDir() {
			w.logger.Debug("skipping", "path", path, "reason", "symlinked directory")

			return false
		}

		return target.Mode().IsRegular()
	default:
		w.logger.Debug("skipping", "path", path, "reason", "not a regular file", "mode", mode.String())

		return false
	}
}

// readDir lists dir sorted by name.
func (w *Walker) readDir(dir string) ([]os.FileInfo, error) {
	file, err := w.fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: opening directory %q: %w", encryption.ErrIO, dir, err)
	}
	defer file.Close()

	entries, err := file.Readdir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: listing directory %q: %w", encryption.ErrIO, dir, err)
	}

	slices.SortFunc(entries, func(a, b os.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries, nil
}

// visit transforms one file and reports the outcome.
func (w *Walker) visit(path string) error {
	w.scanned.Add(1)
	w.logger.Debug("got file", "path", path)

	size, err := w.transformer.Transform(path)
	if err != nil {
		err = fmt.Errorf("processing %q: %w", path, err)
	}

	if w.results != nil {
		w.results <- Result{Path: path, Size: size, Error: err}
	}

	return err
}

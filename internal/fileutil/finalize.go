// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"time"

	"github.com/absfs/absfs"
)

// FinalizeOutput optionally restores modTime on path and returns its size.
func FinalizeOutput(fsys absfs.FileSystem, path string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := fsys.Chtimes(path, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps of %q: %w", path, err)
		}
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", path, err)
	}

	return info.Size(), nil
}

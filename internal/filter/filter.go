// Package filter selects files found under directories using include/exclude patterns
// with find -path semantics.
package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idelchi/gofish/pkg/pathmatch"
)

// Filter decides whether a discovered file is processed.
// Without include patterns every file is included. Excludes always win.
type Filter struct {
	includes *pathmatch.Matcher
	excludes *pathmatch.Matcher
}

// New compiles include/exclude patterns into a reusable filter.
func New(includes, excludes []string) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(Normalize(includes))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(Normalize(excludes))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc}, nil
}

// Match reports whether path should be processed.
func (f *Filter) Match(path string) bool {
	if f == nil {
		return true
	}

	path = Clean(path)

	included := f.includes.Len() == 0 || f.includes.MatchAny(path)

	return included && !f.excludes.MatchAny(path)
}

// Clean converts path to the slash-separated form patterns are matched against.
func Clean(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")
}

// Normalize strips a leading "./" from each pattern and drops blank ones.
func Normalize(patterns []string) []string {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, strings.TrimPrefix(p, "./"))
	}

	return out
}

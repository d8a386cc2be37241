package filter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/absfs/absfs"
	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSONC array of glob patterns from path on fsys.
// Comments and trailing commas are allowed.
func LoadPatterns(fsys absfs.FileSystem, path string) ([]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening patterns file %q: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

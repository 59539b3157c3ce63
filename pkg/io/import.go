package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/strataviz/strata/pkg/stack"
)

// ReadJSON decodes a JSON dataset from r into a series slice.
//
// The input must be a JSON object with a "series" array; each entry must have
// a "label" field and a "values" array. ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A series has a duplicate label
//   - Series carry different numbers of values
//
// Errors are wrapped with the offending series label for context. The
// returned slice is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]stack.Series[string], error) {
	var data dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out := make([]stack.Series[string], 0, len(data.Series))
	seen := make(map[string]bool, len(data.Series))
	for _, s := range data.Series {
		if s.Label == "" {
			return nil, fmt.Errorf("series %d: missing label", len(out))
		}
		if seen[s.Label] {
			return nil, fmt.Errorf("series %q: duplicate label", s.Label)
		}
		seen[s.Label] = true

		if len(out) > 0 && len(s.Values) != len(out[0].Values) {
			return nil, fmt.Errorf("series %q: %d values, want %d to match %q",
				s.Label, len(s.Values), len(out[0].Values), out[0].Label)
		}
		out = append(out, stack.Series[string]{Label: s.Label, Values: s.Values})
	}

	return out, nil
}

// ImportJSON reads a JSON file at path and returns the decoded dataset.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) ([]stack.Series[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

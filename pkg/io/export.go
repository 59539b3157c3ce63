package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/strataviz/strata/pkg/stack"
)

type dataset struct {
	Series []series `json:"series"`
}

type series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// WriteJSON encodes a dataset as JSON and writes it to w.
// The output preserves series order and can be re-imported with [ReadJSON]
// for round-trip processing.
func WriteJSON(data []stack.Series[string], w io.Writer) error {
	out := dataset{Series: make([]series, len(data))}
	for i, s := range data {
		out.Series[i] = series{Label: s.Label, Values: s.Values}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(data []stack.Series[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(data, f)
}

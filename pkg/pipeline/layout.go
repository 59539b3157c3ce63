package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/strataviz/strata/pkg/stack"
)

// Layout is the serializable output of the stack stage: everything the render
// stage needs to draw a stacked chart, with the input data already ordered,
// offset, and reduced to band coordinates.
//
// Layouts are the unit of caching between the two pipeline stages and double
// as the "json" output format.
type Layout struct {
	Chart  string         `json:"chart"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Labels []string       `json:"labels"`
	Bands  [][]stack.Band `json:"bands"`
	YMin   float64        `json:"y_min"`
	YMax   float64        `json:"y_max"`
}

// Validate checks internal consistency: a known chart name and one band row
// per label.
func (l Layout) Validate() error {
	if l.Chart == "" {
		return fmt.Errorf("layout: missing chart type")
	}
	if len(l.Labels) != len(l.Bands) {
		return fmt.Errorf("layout: %d labels but %d band rows", len(l.Labels), len(l.Bands))
	}
	return nil
}

// MarshalLayout serializes a layout to indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// UnmarshalLayout deserializes and validates a layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// ReadLayout decodes a layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}

// WriteLayout encodes a layout to w.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// ImportLayout reads a layout from a JSON file at path.
func ImportLayout(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// ExportLayout writes a layout to a JSON file at path.
func ExportLayout(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}

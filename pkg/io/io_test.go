package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/strataviz/strata/pkg/stack"
)

func TestReadJSON(t *testing.T) {
	input := `{
	  "series": [
	    {"label": "apples", "values": [1, 2, 3]},
	    {"label": "pears", "values": [4, 5, 6]}
	  ]
	}`

	got, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	want := []stack.Series[string]{
		{Label: "apples", Values: []float64{1, 2, 3}},
		{Label: "pears", Values: []float64{4, 5, 6}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dataset mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "malformed json",
			input:   `{"series": [`,
			wantErr: "decode",
		},
		{
			name:    "duplicate label",
			input:   `{"series": [{"label": "a", "values": [1]}, {"label": "a", "values": [2]}]}`,
			wantErr: "duplicate label",
		},
		{
			name:    "missing label",
			input:   `{"series": [{"values": [1]}]}`,
			wantErr: "missing label",
		},
		{
			name:    "length mismatch",
			input:   `{"series": [{"label": "a", "values": [1, 2]}, {"label": "b", "values": [3]}]}`,
			wantErr: "1 values, want 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadJSONEmpty(t *testing.T) {
	got, err := ReadJSON(strings.NewReader(`{"series": []}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty dataset, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	want := []stack.Series[string]{
		{Label: "north", Values: []float64{1.5, 0, 2.25}},
		{Label: "south", Values: []float64{-1, 3, 0.5}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportExportFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	want := []stack.Series[string]{{Label: "solo", Values: []float64{7}}}

	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// Package io provides JSON import and export for series datasets.
//
// # JSON Format
//
// A dataset is a JSON object with one required top-level array:
//
//	{
//	  "series": [
//	    {"label": "apples", "values": [1, 2, 3]},
//	    {"label": "pears", "values": [4, 5, 6]}
//	  ]
//	}
//
// Each series must have a "label" field and a "values" array. Labels must be
// unique within a dataset, and every series must carry the same number of
// values, since the stacking engine consumes one value per series per sample
// position.
//
// # Import
//
// Use [ImportJSON] to read a dataset from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate structure (unique labels, equal lengths)
// and wrap errors with context about which series caused the problem.
//
// # Export
//
// Use [ExportJSON] to write a dataset to a file, or [WriteJSON] to write to
// any io.Writer. Export preserves series order and values exactly, so a
// dataset survives an import, export, re-import round trip unchanged.
package io

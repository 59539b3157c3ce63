package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/chart"
	"github.com/strataviz/strata/pkg/pipeline"
	"github.com/strataviz/strata/pkg/stack"
)

// galleryCommand creates the gallery command, which renders every chart in
// the gallery with a built-in sample dataset.
func (c *CLI) galleryCommand() *cobra.Command {
	var (
		outDir  string
		style   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render every example chart into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGallery(cmd, outDir, style, noCache)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "gallery", "output directory")
	cmd.Flags().StringVar(&style, "style", "", "visual style: simple (default), vivid")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout/artifact cache")

	return cmd
}

func (c *CLI) runGallery(cmd *cobra.Command, outDir, style string, noCache bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	data := sampleData()

	for _, name := range chart.Names() {
		opts := c.Config.pipelineOptions()
		opts.Chart = name
		opts.Logger = c.Logger
		if style != "" {
			opts.Style = style
		}

		result, err := runner.Execute(cmd.Context(), data, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		path := filepath.Join(outDir, name+"."+pipeline.FormatSVG)
		if err := os.WriteFile(path, result.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d charts", len(chart.Names())))
	printSuccess("Gallery written to %s", outDir)
	return nil
}

// sampleData returns the dataset used for gallery and interactive previews.
// Four seasonal series over twelve samples, chosen so every offset and order
// policy produces a visibly different layout.
func sampleData() []stack.Series[string] {
	return []stack.Series[string]{
		{Label: "north", Values: []float64{2, 3, 5, 8, 11, 13, 14, 12, 9, 6, 3, 2}},
		{Label: "east", Values: []float64{5, 5, 6, 7, 8, 9, 9, 8, 7, 6, 5, 5}},
		{Label: "south", Values: []float64{9, 8, 7, 5, 3, 2, 2, 3, 5, 7, 8, 9}},
		{Label: "west", Values: []float64{1, 2, 2, 3, 4, 6, 7, 6, 4, 3, 2, 1}},
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/chart"
	"github.com/strataviz/strata/pkg/io"
	"github.com/strataviz/strata/pkg/pipeline"
	"github.com/strataviz/strata/pkg/stack"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chart   string // chart type from the gallery
	output  string // output file path (or base path for multiple formats)
	formats string // comma-separated output formats: "svg", "json"
	style   string // visual style: "simple" or "vivid"
	curve   string // boundary curve: "linear", "step", "smooth"
	offset  string // offset policy: "none", "stacked", "expand", "silhouette"
	order   string // order policy: "none", "ascending", "descending", "insideout"
	width   int    // viewport width in pixels
	height  int    // viewport height in pixels
	noCache bool   // disable the layout/artifact cache
	refresh bool   // recompute even when cached entries exist
}

// renderCommand creates the render command for generating charts from a
// series dataset.
//
// Stacked charts (area, bars, polar, petal) require a dataset file; static
// demos (arcs, paths) ignore it and may be rendered without one.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [dataset.json]",
		Short: "Render a dataset as a chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd, input, &opts)
		},
	}

	cfg := c.Config
	cmd.Flags().StringVarP(&opts.chart, "chart", "c", "", "chart type: "+strings.Join(chart.Names(), ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), vivid")
	cmd.Flags().StringVar(&opts.curve, "curve", "", "boundary curve: linear (default), step, smooth")
	cmd.Flags().StringVar(&opts.offset, "offset", "", "offset policy: stacked (default), none, expand, silhouette")
	cmd.Flags().StringVar(&opts.order, "order", "", "order policy: none (default), ascending, descending, insideout")
	cmd.Flags().IntVar(&opts.width, "width", cfg.Width, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", cfg.Height, "frame height")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout/artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached entries exist")

	return cmd
}

// runRender loads the dataset, runs the stack/render pipeline, and writes the
// requested artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	pipeOpts := c.pipelineOptions(opts)
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var data []stack.Series[string]
	if input != "" {
		var err error
		data, err = io.ImportJSON(input)
		if err != nil {
			return err
		}
		c.Logger.Debugf("Loaded dataset %s: %d series", input, len(data))
	} else if chart.IsStacked(pipeOpts.Chart) {
		return fmt.Errorf("chart %q needs a dataset file argument", pipeOpts.Chart)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), data, pipeOpts)
	if err != nil {
		return err
	}

	base := basePath(opts.output, input, pipeOpts.Chart)
	paths, err := writeArtifacts(base, pipeOpts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s chart", pipeOpts.Chart)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.SeriesCount, result.Stats.SampleCount, result.CacheInfo.RenderHit)
	return nil
}

// pipelineOptions merges config defaults with command flags. Empty string
// flags fall through to the config value.
func (c *CLI) pipelineOptions(opts *renderOpts) pipeline.Options {
	pipeOpts := c.Config.pipelineOptions()
	pipeOpts.Formats = parseFormats(opts.formats)
	pipeOpts.Refresh = opts.refresh
	pipeOpts.Logger = c.Logger
	pipeOpts.Width = opts.width
	pipeOpts.Height = opts.height

	if opts.chart != "" {
		pipeOpts.Chart = opts.chart
	}
	if opts.style != "" {
		pipeOpts.Style = opts.style
	}
	if opts.curve != "" {
		pipeOpts.Curve = opts.curve
	}
	if opts.offset != "" {
		pipeOpts.Offset = opts.offset
	}
	if opts.order != "" {
		pipeOpts.Order = opts.order
	}
	return pipeOpts
}

// basePath derives the base output path without extension.
// Precedence: explicit output (format extension stripped), then the input
// file name, then the chart name in the working directory.
func basePath(output, input, chartName string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input != "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return chartName
}

// writeArtifacts writes each rendered artifact to base.format and returns the
// written paths in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

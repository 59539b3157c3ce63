package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/chart"
	"github.com/strataviz/strata/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the view command, an interactive gallery browser.
func (c *CLI) viewCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the gallery in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(false)
			if err != nil {
				return err
			}
			defer runner.Close()

			model := newGalleryModel(c, runner, outDir)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(galleryModel); ok && m.lastSaved != "" {
				printSuccess("Saved %s", m.lastSaved)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "directory for rendered charts")

	return cmd
}

// =============================================================================
// galleryModel - Interactive chart browser
// =============================================================================

// galleryModel is the bubbletea model for browsing and rendering charts.
// Enter renders the selected chart with the current policy settings and
// writes the SVG to the output directory.
type galleryModel struct {
	cli    *CLI
	runner *pipeline.Runner
	outDir string

	charts []string
	cursor int

	styleIdx  int
	curveIdx  int
	offsetIdx int
	orderIdx  int

	styles  []string
	curves  []string
	offsets []string
	orders  []string

	lastSaved string
	status    string
}

func newGalleryModel(c *CLI, runner *pipeline.Runner, outDir string) galleryModel {
	m := galleryModel{
		cli:     c,
		runner:  runner,
		outDir:  outDir,
		charts:  chart.Names(),
		styles:  chart.StyleNames(),
		curves:  sortedKeys(pipeline.ValidCurves),
		offsets: sortedKeys(pipeline.ValidOffsets),
		orders:  sortedKeys(pipeline.ValidOrders),
	}
	m.styleIdx = indexOf(m.styles, c.Config.Style)
	m.curveIdx = indexOf(m.curves, c.Config.Curve)
	m.offsetIdx = indexOf(m.offsets, c.Config.Offset)
	m.orderIdx = indexOf(m.orders, c.Config.Order)
	return m
}

func (m galleryModel) Init() tea.Cmd {
	return nil
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.charts)-1 {
				m.cursor++
			}
		case "s":
			m.styleIdx = (m.styleIdx + 1) % len(m.styles)
		case "c":
			m.curveIdx = (m.curveIdx + 1) % len(m.curves)
		case "f":
			m.offsetIdx = (m.offsetIdx + 1) % len(m.offsets)
		case "r":
			m.orderIdx = (m.orderIdx + 1) % len(m.orders)
		case "enter":
			m = m.render()
		}
	}
	return m, nil
}

// render runs the pipeline for the selected chart and writes the SVG.
func (m galleryModel) render() galleryModel {
	opts := m.cli.Config.pipelineOptions()
	opts.Chart = m.charts[m.cursor]
	opts.Style = m.styles[m.styleIdx]
	opts.Curve = m.curves[m.curveIdx]
	opts.Offset = m.offsets[m.offsetIdx]
	opts.Order = m.orders[m.orderIdx]
	opts.Formats = []string{pipeline.FormatSVG}

	result, err := m.runner.Execute(context.Background(), sampleData(), opts)
	if err != nil {
		m.status = StyleWarning.Render(fmt.Sprintf("render failed: %v", err))
		return m
	}

	path := fmt.Sprintf("%s/%s.svg", m.outDir, opts.Chart)
	if err := os.WriteFile(path, result.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
		m.status = StyleWarning.Render(fmt.Sprintf("write failed: %v", err))
		return m
	}

	m.lastSaved = path
	m.status = StyleSuccess.Render(fmt.Sprintf("saved %s", path))
	return m
}

func (m galleryModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chart Gallery"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  s style  c curve  f offset  r order  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.charts {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		kind := listDimStyle.Render("demo")
		if chart.IsStacked(name) {
			kind = listDimStyle.Render("stacked")
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, name, kind)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  style %s · curve %s · offset %s · order %s",
		m.styles[m.styleIdx], m.curves[m.curveIdx], m.offsets[m.offsetIdx], m.orders[m.orderIdx])))
	if m.status != "" {
		b.WriteString("\n  ")
		b.WriteString(m.status)
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}

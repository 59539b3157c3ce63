package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"render", "gallery", "serve", "view", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := newTestCLI()
	c.SetLogLevel(log.DebugLevel)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestSampleData(t *testing.T) {
	data := sampleData()
	if len(data) == 0 {
		t.Fatal("sample data should not be empty")
	}

	n := len(data[0].Values)
	seen := map[string]bool{}
	for _, s := range data {
		if len(s.Values) != n {
			t.Errorf("series %q has %d values, want %d", s.Label, len(s.Values), n)
		}
		if seen[s.Label] {
			t.Errorf("duplicate label %q", s.Label)
		}
		seen[s.Label] = true
	}
}

func TestPipelineOptionsFlagOverrides(t *testing.T) {
	c := newTestCLI()

	opts := c.pipelineOptions(&renderOpts{
		chart:  "bars",
		style:  "vivid",
		width:  640,
		height: 480,
	})

	if opts.Chart != "bars" {
		t.Errorf("Chart = %q, want bars", opts.Chart)
	}
	if opts.Style != "vivid" {
		t.Errorf("Style = %q, want vivid", opts.Style)
	}
	if opts.Width != 640 || opts.Height != 480 {
		t.Errorf("Frame = %dx%d, want 640x480", opts.Width, opts.Height)
	}
	// Unset flags fall through to config defaults
	if opts.Offset != c.Config.Offset {
		t.Errorf("Offset = %q, want config default %q", opts.Offset, c.Config.Offset)
	}
}

// Package cli implements the strata command-line interface.
//
// This package provides commands for rendering charts from series datasets,
// generating the full example gallery, serving charts over HTTP, browsing the
// gallery interactively, and managing the artifact cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a dataset as a chart (SVG or layout JSON)
//   - gallery: Render every example chart into a directory
//   - serve: Serve the chart gallery over HTTP
//   - view: Browse the gallery in an interactive terminal UI
//   - cache: Manage the layout/artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/buildinfo"
	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "strata"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Strata renders stacked-series charts",
		Long:         `Strata is a chart gallery built on a stacked-series layout engine: it orders, offsets, and stacks parallel data series, then renders the resulting bands as SVG charts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

// newCache builds the cache backend selected by configuration.
// Unreachable backends degrade to no caching rather than failing the command.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return openCache(c.Config.Cache)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/strata/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// Package cli implements the ripple command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/buildinfo"
	"github.com/matzehuels/ripple/pkg/config"
	"github.com/matzehuels/ripple/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ripple"

	// layoutSuffix is appended to an input's base name for layout output.
	layoutSuffix = ".layout.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	width      float64
	height     float64
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Ripple lays out a live stream of topics on a stable canvas",
		Long:         `Ripple places conversation topics as non-overlapping circles that keep their positions as the topic list changes, and arranges the same topics radially with their keywords in a map view.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./ripple.toml, then the user config dir)")
	root.PersistentFlags().Float64Var(&c.width, "width", 0, "viewport width (overrides config)")
	root.PersistentFlags().Float64Var(&c.height, "height", 0, "viewport height (overrides config)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.streamCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and applies viewport flag overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.width > 0 {
		cfg.Viewport.Width = c.width
	}
	if c.height > 0 {
		cfg.Viewport.Height = c.height
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "viewport", cfg.Viewport, "file", c.configPath)
	return cfg, nil
}

// newEngine builds an engine tuned by cfg that logs through the CLI logger.
func (c *CLI) newEngine(cfg config.Config) *engine.Engine {
	return engine.New(engine.WithOptions(cfg.Engine()), engine.WithLogger(c.Logger))
}

// =============================================================================
// Paths
// =============================================================================

// basePath strips the extension from input, or from output when given.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return strings.TrimSuffix(output, filepath.Ext(output))
}

// layoutPath derives the default layout output path for input.
func layoutPath(output, input string) string {
	if output != "" {
		return output
	}
	return basePath("", input) + layoutSuffix
}

// parseList splits a comma-separated flag value, falling back to def.
func parseList(s string, def ...string) []string {
	if s == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

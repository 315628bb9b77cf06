package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/preview"
	"github.com/matzehuels/ripple/pkg/topic"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single view and format) or base path
	views   []string // "scatter", "map"
	formats []string // "svg", "png"
	layout  bool     // also write the layout.json snapshot
}

// renderCommand creates the render command for drawing preview images.
func (c *CLI) renderCommand() *cobra.Command {
	var viewsStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [topics.json|topics.toml]",
		Short: "Draw the scatter and map views of a topic list",
		Long: `Draw the scatter and map views of a topic list as SVG or PNG.

With one view and one format the image is written to -o (default:
<input>.<format>). Otherwise files are named <base>_<view>.<format>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.views = parseList(viewsStr, preview.ViewScatter, preview.ViewMap)
			opts.formats = parseList(formatsStr, preview.FormatSVG)
			if err := validateRenderOpts(opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single view/format) or base path (multiple)")
	cmd.Flags().StringVarP(&viewsStr, "view", "t", "", "view(s): scatter, map (comma-separated, default: both)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().BoolVar(&opts.layout, "layout", false, "also write <base>.layout.json")

	return cmd
}

func validateRenderOpts(opts renderOpts) error {
	for _, v := range opts.views {
		if err := preview.ValidateView(v); err != nil {
			return err
		}
	}
	for _, f := range opts.formats {
		if err := preview.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// renderPaths maps every requested view and format to its output file.
func renderPaths(input string, opts renderOpts) map[[2]string]string {
	paths := make(map[[2]string]string)
	if len(opts.views) == 1 && len(opts.formats) == 1 {
		view, format := opts.views[0], opts.formats[0]
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + format
		}
		paths[[2]string{view, format}] = path
		return paths
	}
	base := basePath(opts.output, input)
	for _, view := range opts.views {
		for _, format := range opts.formats {
			paths[[2]string{view, format}] = fmt.Sprintf("%s_%s.%s", base, view, format)
		}
	}
	return paths
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	topics, err := topic.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Rendering %s (%d topics)", input, len(topics))

	snap, err := c.newEngine(cfg).Update(ctx, topics, cfg.Viewport)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	spinner := newSpinner(ctx, "Drawing previews...")
	spinner.Start()

	var written []string
	paths := renderPaths(input, opts)
	for _, view := range opts.views {
		for _, format := range opts.formats {
			path := paths[[2]string{view, format}]
			var buf bytes.Buffer
			if err := preview.Render(&buf, snap, topics, view, format); err != nil {
				spinner.StopWithError("Render failed")
				return err
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				spinner.StopWithError("Render failed")
				return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", path)
			}
			c.Logger.Debug("wrote preview", "view", view, "format", format, "path", path)
			written = append(written, path)
		}
	}
	if opts.layout {
		path := basePath(opts.output, input) + layoutSuffix
		if err := writeJSONFile(path, snap); err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		written = append(written, path)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Rendered %d file(s)", len(written))
	for _, p := range written {
		printFile(p)
	}
	printStats(snap)
	return nil
}

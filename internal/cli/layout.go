package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/topic"
)

// layoutCommand creates the layout command for computing a snapshot from a topic file.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout [topics.json|topics.toml]",
		Short: "Compute the scatter and map layout of a topic list",
		Long: `Compute the scatter and map layout of a topic list.

The input is a JSON array of topics, a JSON object with a "topics" list, or a
TOML file with [[topics]] tables. The output is a layout.json snapshot with
circle positions, the radial map, colors and canvas size.

Use -o - to write the snapshot to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")

	return cmd
}

// runLayout loads the topics, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	topics, err := topic.ReadFile(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	snap, err := c.newEngine(cfg).Update(ctx, topics, cfg.Viewport)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Laid out %d topics", len(snap.Order)))

	if output == "-" {
		return writeJSON(os.Stdout, snap)
	}
	outputPath := layoutPath(output, input)
	if err := writeJSONFile(outputPath, snap); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(snap)
	fmt.Println()
	printNextStep("Preview", "ripple render "+input)
	return nil
}

func writeJSON(w io.Writer, snap *engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// writeJSONFile writes snap as indented JSON.
func writeJSONFile(path string, snap *engine.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := writeJSON(f, snap); err != nil {
		f.Close()
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}

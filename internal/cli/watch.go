package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/config"
	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/topic"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

// watchCommand creates the watch command for re-laying out a topic file on change.
func (c *CLI) watchCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch [topics.json|topics.toml]",
		Short: "Re-layout a topic file every time it changes",
		Long: `Re-layout a topic file every time it changes.

One engine is kept for the whole session, so topics that survive an edit keep
their positions. The snapshot is rewritten after every change. Invalid
intermediate saves are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, input, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	w := &watcher{
		cli:    c,
		cfg:    cfg,
		engine: c.newEngine(cfg),
		input:  input,
		output: layoutPath(output, input),
	}
	// The first layout must succeed; later failures only warn.
	if err := w.relayout(ctx); err != nil {
		return err
	}
	printInfo("Watching %s (ctrl+c to stop)", input)
	return w.run(ctx)
}

type watcher struct {
	cli    *CLI
	cfg    config.Config
	engine *engine.Engine
	input  string
	output string
}

// run watches the input's directory rather than the file itself so saves
// that replace the file by rename are still seen.
func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "create file watcher")
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "resolve %s", w.input)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "watch %s", filepath.Dir(abs))
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isChange(ev, abs) {
				continue
			}
			w.cli.Logger.Debug("file event", "op", ev.Op.String(), "name", ev.Name)
			timer.Reset(watchDebounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.cli.Logger.Warn("watch error", "err", err)
		case <-timer.C:
			if err := w.relayout(ctx); err != nil {
				printWarning("%v", err)
			}
		}
	}
}

// isChange reports whether ev rewrote the file at path.
func isChange(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *watcher) relayout(ctx context.Context) error {
	topics, err := topic.ReadFile(w.input)
	if err != nil {
		return err
	}
	snap, err := w.engine.Update(ctx, topics, w.cfg.Viewport)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if snap.Stats.Skipped {
		w.cli.Logger.Debug("topics unchanged")
		return nil
	}
	if err := writeJSONFile(w.output, snap); err != nil {
		return err
	}
	printSuccess("Updated %s", w.output)
	printStats(snap)
	return nil
}

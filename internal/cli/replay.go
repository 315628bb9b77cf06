package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/topic"
)

// replayCommand creates the replay command for running a recorded sequence
// of topic lists through one engine.
func (c *CLI) replayCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "replay [steps.json|steps.toml]",
		Short: "Replay a recorded sequence of topic lists",
		Long: `Replay a recorded sequence of topic lists through one layout engine.

The input has a top-level "steps" list; each step carries the full topic list
at that point of the conversation. Every step is laid out on the same canvas,
so the output shows which topics were placed, resized or moved as the list
evolved. With --interactive the steps can be browsed in the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse steps interactively")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, input string, interactive bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	steps, err := topic.ReadSteps(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	frames, err := replayFrames(ctx, c.newEngine(cfg), steps, cfg.Viewport)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d steps", len(frames)))

	if interactive {
		_, err := tea.NewProgram(NewReplayModel(frames), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	}

	for i, f := range frames {
		printInfo("step %s", StyleNumber.Render(fmt.Sprint(i+1)))
		printStats(f.Snap)
	}
	return nil
}

// replayFrames lays out every step in order on one engine and marks each
// topic as new or moved relative to the step before.
func replayFrames(ctx context.Context, e *engine.Engine, steps []topic.Step, vp engine.Viewport) ([]replayFrame, error) {
	frames := make([]replayFrame, 0, len(steps))
	var prev *engine.Snapshot
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := e.Update(ctx, step.Topics, vp)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		state := make(map[string]string, len(snap.Order))
		for _, id := range snap.Order {
			state[id] = rowKept
			if prev == nil {
				state[id] = rowNew
				continue
			}
			old, ok := prev.Scatter[id]
			cur := snap.Scatter[id]
			switch {
			case !ok:
				state[id] = rowNew
			case old.X != cur.X || old.Y != cur.Y:
				state[id] = rowMoved
			}
		}
		frames = append(frames, replayFrame{Snap: snap, Topics: step.Topics, State: state})
		prev = snap
	}
	return frames, nil
}

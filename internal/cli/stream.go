package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/stream"
)

// streamFlags override the redis section of the config.
type streamFlags struct {
	addr    string
	topics  string
	layouts string
}

// streamCommand creates the stream command for the Redis pub/sub consumer.
func (c *CLI) streamCommand() *cobra.Command {
	var flags streamFlags

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Lay out topic lists published on a Redis channel",
		Long: `Lay out topic lists published on a Redis channel.

Every message on the topics channel is a topic document. The layout of the
newest one is published as {"event": "layout", "snapshot": {...}} on the
layouts channel. Messages that arrive while a layout is being computed are
coalesced and only the latest is laid out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStream(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "redis", "", "redis address (default: redis.addr from config)")
	cmd.Flags().StringVar(&flags.topics, "topics", "", "channel to read topic lists from")
	cmd.Flags().StringVar(&flags.layouts, "layouts", "", "channel to publish layouts to")

	return cmd
}

func (c *CLI) runStream(ctx context.Context, flags streamFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	rc := cfg.Redis
	if flags.addr != "" {
		rc.Addr = flags.addr
	}
	if flags.topics != "" {
		rc.TopicsChannel = flags.topics
	}
	if flags.layouts != "" {
		rc.LayoutsChannel = flags.layouts
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	defer client.Close()

	if err := stream.Ping(ctx, client, stream.DefaultAttempts, stream.DefaultDelay); err != nil {
		return fmt.Errorf("connect to %s: %w", rc.Addr, err)
	}

	consumer := stream.NewConsumer(client, c.newEngine(cfg), stream.Options{
		TopicsChannel:  rc.TopicsChannel,
		LayoutsChannel: rc.LayoutsChannel,
		Viewport:       cfg.Viewport,
	}, c.Logger)
	consumer.OnLayout(func(snap *engine.Snapshot) {
		c.Logger.Info("layout", "topics", snap.Stats.Topics, "new", snap.Stats.Created,
			"moved", snap.Stats.Moved, "degraded", len(snap.Degraded), "skipped", snap.Stats.Skipped)
	})

	printInfo("Streaming %s %s %s", StyleValue.Render(rc.TopicsChannel), iconArrow, StyleValue.Render(rc.LayoutsChannel))
	err = consumer.Run(ctx)
	st := consumer.Stats()
	c.Logger.Info(fmt.Sprintf("stream stopped: %d received, %d invalid, %d coalesced, %d published",
		st.Received, st.Invalid, st.Dropped, st.Published))
	return err
}

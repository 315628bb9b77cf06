// Package stream drives a layout engine from a Redis pub/sub channel.
//
// A Consumer subscribes to a topics channel carrying topic documents (a bare
// array or an {"event": "topics", "topics": [...]} envelope), lays each one
// out and publishes the resulting snapshot to a layouts channel:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	c := stream.NewConsumer(client, engine.New(), stream.Options{
//	    TopicsChannel:  "ripple:topics",
//	    LayoutsChannel: "ripple:layouts",
//	}, logger)
//	err := c.Run(ctx)
//
// Receiving and layout run on separate goroutines joined by a [Mailbox]:
// while a layout is in progress only the newest topic list is kept, so a
// burst of updates costs one recomputation rather than one per message.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/topic"
)

// EventLayout is the event name of published messages.
const EventLayout = "layout"

// Options configures a Consumer.
type Options struct {
	TopicsChannel  string
	LayoutsChannel string
	// Viewport for every update. Zero uses engine.DefaultViewport.
	Viewport engine.Viewport
	// PublishSkipped also republishes when the topic list did not change.
	PublishSkipped bool
}

// Message is the payload published on the layouts channel.
type Message struct {
	Event    string           `json:"event"`
	Snapshot *engine.Snapshot `json:"snapshot"`
}

// Stats counts consumer activity.
type Stats struct {
	Received  int64 `json:"received"`
	Invalid   int64 `json:"invalid"`
	Dropped   int64 `json:"dropped"`
	Published int64 `json:"published"`
}

// Consumer lays out topic lists received from Redis.
type Consumer struct {
	client redis.UniversalClient
	engine *engine.Engine
	opts   Options
	logger *log.Logger
	inbox  *Mailbox[[]topic.Topic]

	publish  func(ctx context.Context, payload []byte) error
	onLayout func(*engine.Snapshot)

	received, invalid, dropped, published atomic.Int64
}

// NewConsumer creates a consumer. The engine must not be used elsewhere
// while the consumer runs.
func NewConsumer(client redis.UniversalClient, e *engine.Engine, opts Options, logger *log.Logger) *Consumer {
	c := newConsumer(e, opts, logger)
	c.client = client
	c.publish = func(ctx context.Context, payload []byte) error {
		err := retry(ctx, DefaultAttempts, DefaultDelay, func() error {
			return transient(ctx, client.Publish(ctx, c.opts.LayoutsChannel, payload).Err())
		})
		return unwrapTransient(err)
	}
	return c
}

func newConsumer(e *engine.Engine, opts Options, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Viewport == (engine.Viewport{}) {
		opts.Viewport = engine.DefaultViewport()
	}
	return &Consumer{
		engine: e,
		opts:   opts,
		logger: logger,
		inbox:  NewMailbox[[]topic.Topic](),
	}
}

// OnLayout registers a callback invoked after every computed layout. It
// must be set before Run.
func (c *Consumer) OnLayout(fn func(*engine.Snapshot)) { c.onLayout = fn }

// Stats returns a snapshot of the consumer counters.
func (c *Consumer) Stats() Stats {
	return Stats{
		Received:  c.received.Load(),
		Invalid:   c.invalid.Load(),
		Dropped:   c.dropped.Load(),
		Published: c.published.Load(),
	}
}

// Run subscribes and processes messages until ctx is cancelled or the
// connection fails. Cancellation is not reported as an error.
func (c *Consumer) Run(ctx context.Context) error {
	pubsub := c.client.Subscribe(ctx, c.opts.TopicsChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "subscribe to %s", c.opts.TopicsChannel)
	}
	c.logger.Info("subscribed", "channel", c.opts.TopicsChannel, "publish", c.opts.LayoutsChannel)

	err := c.run(ctx, pubsub.Channel())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Consumer) run(ctx context.Context, msgs <-chan *redis.Message) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.receive(ctx, msgs) })
	g.Go(func() error { return c.layoutLoop(ctx) })
	return g.Wait()
}

func (c *Consumer) receive(ctx context.Context, msgs <-chan *redis.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return apperrors.New(apperrors.ErrCodeNetwork, "subscription to %s closed", c.opts.TopicsChannel)
			}
			c.handle(msg.Payload)
		}
	}
}

func (c *Consumer) handle(payload string) {
	c.received.Add(1)
	topics, err := topic.ParseJSON([]byte(payload))
	if err != nil {
		c.invalid.Add(1)
		c.logger.Warn("ignoring message", "err", err)
		return
	}
	if c.inbox.Put(topics) {
		c.dropped.Add(1)
		c.logger.Debug("superseded pending topic list")
	}
}

func (c *Consumer) layoutLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.inbox.Ready():
			topics, ok := c.inbox.Take()
			if !ok {
				continue
			}
			if err := c.layout(ctx, topics); err != nil {
				return err
			}
		}
	}
}

func (c *Consumer) layout(ctx context.Context, topics []topic.Topic) error {
	snap, err := c.engine.Update(ctx, topics, c.opts.Viewport)
	if err != nil {
		return err
	}
	if c.onLayout != nil {
		c.onLayout(snap)
	}
	if snap.Stats.Skipped && !c.opts.PublishSkipped {
		return nil
	}

	payload, err := json.Marshal(Message{Event: EventLayout, Snapshot: snap})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode snapshot")
	}
	if err := c.publish(ctx, payload); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "publish to %s", c.opts.LayoutsChannel)
	}
	c.published.Add(1)
	return nil
}

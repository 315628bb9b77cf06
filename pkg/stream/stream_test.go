package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
)

type recorder struct {
	mu       sync.Mutex
	messages []Message
	notify   chan struct{}
}

func newRecorder() *recorder { return &recorder{notify: make(chan struct{}, 16)} }

func (r *recorder) publish(_ context.Context, payload []byte) error {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()
	r.notify <- struct{}{}
	return nil
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.notify:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a published layout")
	}
}

func testConsumer(opts Options) (*Consumer, *recorder) {
	rec := newRecorder()
	c := newConsumer(engine.New(engine.WithLogger(log.New(io.Discard))), opts, log.New(io.Discard))
	c.publish = rec.publish
	return c, rec
}

func TestConsumerPublishesLayouts(t *testing.T) {
	c, rec := testConsumer(Options{LayoutsChannel: "out"})
	msgs := make(chan *redis.Message, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.run(ctx, msgs) }()

	msgs <- &redis.Message{Payload: `[{"id":"a","label":"Alpha"},{"id":"b","label":"Beta"}]`}
	rec.wait(t)
	msgs <- &redis.Message{Payload: `{"event":"topics","topics":[{"id":"a","label":"Alpha"},{"id":"b","label":"Beta"},{"id":"c","label":"Gamma"}]}`}
	rec.wait(t)

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("run() = %v, want context.Canceled", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.messages) != 2 {
		t.Fatalf("published %d messages, want 2", len(rec.messages))
	}
	first, second := rec.messages[0].Snapshot, rec.messages[1].Snapshot
	if rec.messages[0].Event != EventLayout {
		t.Errorf("event = %q", rec.messages[0].Event)
	}
	if len(second.Scatter) != 3 {
		t.Errorf("second layout has %d topics, want 3", len(second.Scatter))
	}
	if first.Scatter["a"].X != second.Scatter["a"].X || first.Scatter["a"].Y != second.Scatter["a"].Y {
		t.Error("topic a moved between stream updates")
	}

	stats := c.Stats()
	if stats.Received != 2 || stats.Published != 2 || stats.Invalid != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestConsumerSkipsInvalidAndUnchanged(t *testing.T) {
	c, rec := testConsumer(Options{})
	ctx := context.Background()

	c.handle("not json")
	if got := c.Stats().Invalid; got != 1 {
		t.Errorf("invalid = %d, want 1", got)
	}
	if _, ok := c.inbox.Take(); ok {
		t.Error("invalid message reached the mailbox")
	}

	payload := `[{"id":"a","label":"Alpha"}]`
	for i := 0; i < 2; i++ {
		c.handle(payload)
		topics, ok := c.inbox.Take()
		if !ok {
			t.Fatal("valid message missing from mailbox")
		}
		if err := c.layout(ctx, topics); err != nil {
			t.Fatalf("layout: %v", err)
		}
	}
	if got := c.Stats().Published; got != 1 {
		t.Errorf("published = %d, want 1 (unchanged list is not republished)", got)
	}
	if len(rec.notify) != 1 {
		t.Errorf("recorder saw %d messages", len(rec.notify))
	}
}

func TestConsumerCoalescesBursts(t *testing.T) {
	c, _ := testConsumer(Options{})
	c.handle(`[{"id":"a","label":"One"}]`)
	c.handle(`[{"id":"a","label":"Two"}]`)
	c.handle(`[{"id":"a","label":"Three"}]`)

	topics, ok := c.inbox.Take()
	if !ok || topics[0].Label != "Three" {
		t.Errorf("mailbox holds %+v, want the latest list", topics)
	}
	if got := c.Stats().Dropped; got != 2 {
		t.Errorf("dropped = %d, want 2", got)
	}
}

func TestConsumerStopsWhenSubscriptionCloses(t *testing.T) {
	c, _ := testConsumer(Options{TopicsChannel: "in"})
	msgs := make(chan *redis.Message)
	close(msgs)

	err := c.run(context.Background(), msgs)
	if !apperrors.Is(err, apperrors.ErrCodeNetwork) {
		t.Errorf("run() = %v, want a network error", err)
	}
}

func TestConsumerOnLayout(t *testing.T) {
	c, _ := testConsumer(Options{})
	var got *engine.Snapshot
	c.OnLayout(func(s *engine.Snapshot) { got = s })

	c.handle(`[{"id":"a","label":"Alpha"}]`)
	topics, _ := c.inbox.Take()
	if err := c.layout(context.Background(), topics); err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got.Scatter) != 1 {
		t.Errorf("OnLayout received %+v", got)
	}
}

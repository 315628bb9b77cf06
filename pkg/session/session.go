// Package session keeps one layout engine per live canvas.
//
// A canvas session is created when a client starts a recording and lives
// until it is deleted or has been idle for its TTL. Every session owns its
// own [engine.Engine]; updates on one session are serialized by the
// session's mutex while different sessions proceed in parallel.
//
// # Usage
//
//	store := session.NewMemoryStore(session.Config{TTL: time.Hour})
//	sess, err := store.Create(ctx)
//	if err != nil {
//	    return err
//	}
//	snap, err := sess.Update(ctx, topics, viewport)
//
// Layouts are never persisted. A restarted server starts with no sessions
// and clients create new ones.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/topic"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrExpired is returned when a session has been idle longer than its TTL.
	ErrExpired = errors.New("session expired")

	// ErrLimit is returned when the store is full.
	ErrLimit = errors.New("too many sessions")
)

// Default durations.
const (
	// DefaultTTL is how long an idle session survives.
	DefaultTTL = time.Hour

	// DefaultCleanupInterval is how often expired sessions are swept.
	DefaultCleanupInterval = time.Minute
)

// Session is one canvas with its layout engine.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	engine    *engine.Engine
	topics    []topic.Topic
	viewport  engine.Viewport
	expiresAt time.Time
	ttl       time.Duration
}

// Info is a read-only view of a session.
type Info struct {
	ID        string    `json:"id"`
	Topics    int       `json:"topics"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newSession(id string, e *engine.Engine, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		engine:    e,
		expiresAt: now.Add(ttl),
		ttl:       ttl,
	}
}

// Update lays out topics on this session's canvas. A zero viewport reuses
// the viewport of the previous update.
func (s *Session) Update(ctx context.Context, topics []topic.Topic, vp engine.Viewport) (*engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vp == (engine.Viewport{}) {
		vp = s.viewport
	}
	snap, err := s.engine.Update(ctx, topics, vp)
	if err != nil {
		return nil, err
	}
	s.topics = topics
	s.viewport = snap.Viewport
	s.touch(time.Now())
	return snap, nil
}

// Snapshot returns the latest layout and the topics it was computed from.
// The snapshot is nil before the first update.
func (s *Session) Snapshot() (*engine.Snapshot, []topic.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.engine.Last(), s.topics
}

// Reset clears the canvas but keeps the session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.topics = nil
	s.touch(time.Now())
}

// Info describes the session.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{ID: s.ID, Topics: len(s.topics), CreatedAt: s.CreatedAt, ExpiresAt: s.expiresAt}
}

// IsExpired reports whether the session was idle past its TTL at now.
func (s *Session) IsExpired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(now time.Time) {
	s.expiresAt = now.Add(s.ttl)
}

// Store is the interface for session storage backends.
type Store interface {
	// Create starts a new session.
	Create(ctx context.Context) (*Session, error)

	// Get returns a live session. It returns ErrNotFound for unknown ids
	// and ErrExpired for sessions idle past their TTL.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown id is ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions and returns how many were removed.
	Cleanup(ctx context.Context) int
}

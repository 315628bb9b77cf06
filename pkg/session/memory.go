package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ripple/pkg/engine"
)

// Config tunes a MemoryStore.
type Config struct {
	// TTL is the idle lifetime of a session. Zero uses DefaultTTL.
	TTL time.Duration
	// MaxSessions caps live sessions. Zero means unlimited.
	MaxSessions int
	// Engine is the layout tuning for new sessions.
	Engine engine.Options
	// Logger receives engine logs. Nil uses log.Default().
	Logger *log.Logger
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      Config
	now      func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(cfg Config) *MemoryStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Engine.Palette == nil {
		cfg.Engine = engine.DefaultOptions()
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Create starts a new session with a random UUID.
func (s *MemoryStore) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		return nil, ErrLimit
	}
	id := uuid.NewString()
	e := engine.New(
		engine.WithOptions(s.cfg.Engine),
		engine.WithLogger(s.cfg.Logger.With("session", id)),
	)
	sess := newSession(id, e, s.cfg.TTL, s.now())
	s.sessions[id] = sess
	return sess, nil
}

// Get returns a live session.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if sess.IsExpired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrExpired
	}
	return sess, nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Cleanup removes expired sessions.
func (s *MemoryStore) Cleanup(ctx context.Context) int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunCleanup sweeps expired sessions every interval until ctx is done.
func (s *MemoryStore) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Cleanup(ctx); n > 0 {
				s.cfg.Logger.Debug("removed expired sessions", "count", n)
			}
		}
	}
}

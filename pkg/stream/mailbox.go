package stream

import "sync"

// Mailbox is a one-slot queue where a newer value replaces an unread one.
// It lets a slow consumer always work on the latest input instead of
// draining a backlog of stale ones.
type Mailbox[T any] struct {
	mu    sync.Mutex
	value T
	full  bool
	ready chan struct{}
}

// NewMailbox returns an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ready: make(chan struct{}, 1)}
}

// Put stores v, reporting whether it replaced an unread value.
func (m *Mailbox[T]) Put(v T) (replaced bool) {
	m.mu.Lock()
	replaced = m.full
	m.value, m.full = v, true
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return replaced
}

// Ready is signalled after a Put. A signal may be stale; always check Take.
func (m *Mailbox[T]) Ready() <-chan struct{} { return m.ready }

// Take removes and returns the stored value.
func (m *Mailbox[T]) Take() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if !m.full {
		return zero, false
	}
	v := m.value
	m.value, m.full = zero, false
	return v, true
}

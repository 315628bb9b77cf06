package stream

import (
	"sync"
	"testing"
)

func TestMailboxLatestWins(t *testing.T) {
	m := NewMailbox[int]()
	if _, ok := m.Take(); ok {
		t.Fatal("empty mailbox returned a value")
	}

	if m.Put(1) {
		t.Error("first Put reported a replacement")
	}
	if !m.Put(2) {
		t.Error("second Put did not report a replacement")
	}

	select {
	case <-m.Ready():
	default:
		t.Fatal("Ready not signalled")
	}
	if v, ok := m.Take(); !ok || v != 2 {
		t.Errorf("Take() = %d, %v; want 2, true", v, ok)
	}
	if _, ok := m.Take(); ok {
		t.Error("mailbox not empty after Take")
	}
}

func TestMailboxConcurrentPut(t *testing.T) {
	m := NewMailbox[int]()
	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			m.Put(v)
		}(i)
	}
	wg.Wait()

	v, ok := m.Take()
	if !ok || v < 1 || v > 100 {
		t.Errorf("Take() = %d, %v", v, ok)
	}
	if len(m.Ready()) != 1 {
		t.Errorf("ready signals = %d, want 1", len(m.Ready()))
	}
}

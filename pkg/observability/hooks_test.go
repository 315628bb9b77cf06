package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnUpdateStart(ctx, 3)
	l.OnUpdateComplete(ctx, UpdateStats{Topics: 3, Created: 1}, time.Millisecond)
	l.OnPlacementDegraded(ctx, "scatter", "t1", "no free slot")

	// Keyword cache hooks
	c := NoopKeywordCacheHooks{}
	c.OnKeywordCacheHit(ctx, 4)
	c.OnKeywordCacheMiss(ctx, 2)
	c.OnKeywordCacheEvict(ctx, 1)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "PUT", "/sessions/{id}/topics")
	h.OnResponse(ctx, "PUT", "/sessions/{id}/topics", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := KeywordCache().(NoopKeywordCacheHooks); !ok {
		t.Error("KeywordCache() should return NoopKeywordCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customCache := &testKeywordCacheHooks{}
	SetKeywordCacheHooks(customCache)
	if KeywordCache() != customCache {
		t.Error("SetKeywordCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)

	// Setting nil should be ignored
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testKeywordCacheHooks struct{ NoopKeywordCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

package radial

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/topic"
)

func mapBounds() geom.Bounds {
	return DefaultOptions().Bounds(1400, 900)
}

func sampleTopics() []topic.Topic {
	return []topic.Topic{
		{ID: "t1", Label: "TravelPlan", Keyphrases: []string{"Erhai", "Dali", "Lijiang"}},
		{ID: "t2", Label: "BudgetPlan", Keyphrases: []string{"Costs"}},
		{ID: "t3", Label: "Food", Summary: "rice noodles, mushrooms; tea"},
	}
}

func TestComputeRings(t *testing.T) {
	r := ComputeRings(mapBounds(), DefaultOptions())

	want := Rings{
		Center:       geom.Point{X: 700, Y: 450},
		Outer:        232,
		Topic:        139.2,
		KeywordInner: 219.2,
		KeywordSpan:  40,
	}
	if r.Center != want.Center {
		t.Errorf("Center = %v, want %v", r.Center, want.Center)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"Outer", r.Outer, want.Outer},
		{"Topic", r.Topic, want.Topic},
		{"KeywordInner", r.KeywordInner, want.KeywordInner},
		{"KeywordSpan", r.KeywordSpan, want.KeywordSpan},
	} {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestComputeRingsRoomyCanvas(t *testing.T) {
	// available = 600, outer = 562, ring = 337.2, inner = 447.2.
	r := ComputeRings(geom.Bounds{Width: 2000, Height: 1560, MarginX: 220, MarginY: 180}, DefaultOptions())
	if math.Abs(r.KeywordInner-447.2) > 1e-9 {
		t.Errorf("KeywordInner = %v, want 447.2", r.KeywordInner)
	}
	if math.Abs(r.KeywordSpan-114.8) > 1e-9 {
		t.Errorf("KeywordSpan = %v, want 114.8", r.KeywordSpan)
	}
}

func TestOptionsBoundsMinWidth(t *testing.T) {
	b := DefaultOptions().Bounds(400, 700)
	if b.Width != 820 || b.Height != 700 || b.MarginX != 220 || b.MarginY != 180 {
		t.Errorf("Bounds(400, 700) = %+v", b)
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := NewLayouter(DefaultOptions()).Compute(sampleTopics(), mapBounds())
	b := NewLayouter(DefaultOptions()).Compute(sampleTopics(), mapBounds())

	if !reflect.DeepEqual(a.Topics, b.Topics) {
		t.Errorf("topic positions differ between layouters:\n%v\n%v", a.Topics, b.Topics)
	}
	if !reflect.DeepEqual(a.Keywords, b.Keywords) {
		t.Errorf("keyword positions differ between layouters:\n%v\n%v", a.Keywords, b.Keywords)
	}
}

func TestComputeShape(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	got := l.Compute(sampleTopics(), b)

	if len(got.Topics) != 3 {
		t.Fatalf("len(Topics) = %d, want 3", len(got.Topics))
	}
	for id, d := range got.Topics {
		if d.Radius != DefaultTopicRadius {
			t.Errorf("%s radius = %v, want %v", id, d.Radius, DefaultTopicRadius)
		}
		edge := DefaultTopicRadius + topicPushPad + DefaultEdgePad
		if d.X < edge || d.X > b.Width-edge || d.Y < edge || d.Y > b.Height-edge {
			t.Errorf("%s at (%v, %v) escapes the canvas", id, d.X, d.Y)
		}
	}

	wantKeywords := map[string][]string{
		"t1": {"Erhai", "Dali", "Lijiang"},
		"t2": {"Costs"},
		"t3": {"rice noodles", "mushrooms", "tea"},
	}
	for id, want := range wantKeywords {
		kws := got.Keywords[id]
		if len(kws) != len(want) {
			t.Fatalf("%s has %d keywords, want %d", id, len(kws), len(want))
		}
		for i, kw := range kws {
			if kw.Keyword != want[i] {
				t.Errorf("%s keyword %d = %q, want %q", id, i, kw.Keyword, want[i])
			}
		}
	}
	if got.Cache.Misses != 7 || got.Cache.Hits != 0 {
		t.Errorf("Cache = %+v, want 7 misses and no hits", got.Cache)
	}
	if l.Cache().Len() != 7 {
		t.Errorf("cache holds %d keywords, want 7", l.Cache().Len())
	}
}

func TestComputeCapsKeywords(t *testing.T) {
	tp := topic.Topic{ID: "many", Label: "Many", Keyphrases: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	got := NewLayouter(DefaultOptions()).Compute([]topic.Topic{tp}, mapBounds())
	if n := len(got.Keywords["many"]); n != DefaultMaxKeywords {
		t.Errorf("len(Keywords) = %d, want %d", n, DefaultMaxKeywords)
	}
}

func TestKeywordCacheReuse(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	topics := sampleTopics()
	first := l.Compute(topics[:2], b)

	// t1 keeps its keywords while its neighbour changes.
	second := l.Compute([]topic.Topic{topics[0], topics[2]}, b)
	if !reflect.DeepEqual(first.Keywords["t1"], second.Keywords["t1"]) {
		t.Errorf("t1 keywords moved:\n%v\n%v", first.Keywords["t1"], second.Keywords["t1"])
	}
	if second.Cache.Hits != 3 {
		t.Errorf("Hits = %d, want 3", second.Cache.Hits)
	}
}

func TestKeywordCachePruning(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	topics := sampleTopics()
	l.Compute(topics[:2], b)

	pruned := l.Compute(topics[:1], b)
	if pruned.Cache.Evicted != 1 {
		t.Errorf("Evicted = %d, want 1", pruned.Cache.Evicted)
	}
	for k := range l.Cache().Snapshot() {
		if k.TopicID == "t2" {
			t.Errorf("stale key %v survived", k)
		}
	}

	// An unrelated topic must not bring back t2's entry, nor must t2 itself.
	l.Compute([]topic.Topic{topics[0], topics[2]}, b)
	back := l.Compute(topics[:2], b)
	if _, ok := l.Cache().Get(KeywordKey{TopicID: "t2", Keyword: "Costs", Index: 0}); !ok {
		t.Fatal("t2 keyword not cached after re-adding t2")
	}
	if back.Cache.Misses != 1 {
		t.Errorf("Misses after re-adding t2 = %d, want 1", back.Cache.Misses)
	}
}

func TestKeywordCacheIndexMatters(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	l.Compute([]topic.Topic{{ID: "a", Keyphrases: []string{"x", "y"}}}, b)
	got := l.Compute([]topic.Topic{{ID: "a", Keyphrases: []string{"y", "x"}}}, b)
	if got.Cache.Hits != 0 || got.Cache.Evicted != 2 {
		t.Errorf("Cache = %+v, want no hits and 2 evictions", got.Cache)
	}
}

func TestComputeEmptyClearsCache(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	l.Compute(sampleTopics(), b)

	got := l.Compute(nil, b)
	if len(got.Topics) != 0 || len(got.Keywords) != 0 {
		t.Errorf("empty frame = %+v", got)
	}
	if got.Cache.Evicted != 7 || l.Cache().Len() != 0 {
		t.Errorf("Evicted = %d, cache len = %d; want 7 and 0", got.Cache.Evicted, l.Cache().Len())
	}
}

func TestComputeBoundsChangeKeepsCache(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	topics := sampleTopics()
	first := l.Compute(topics, mapBounds())

	// Only the canvas height grows, as when a scatter circle lands lower.
	got := l.Compute(topics, DefaultOptions().Bounds(1400, 960))
	if got.Cache.Hits != 7 || got.Cache.Misses != 0 || got.Cache.Evicted != 0 {
		t.Errorf("Cache = %+v, want 7 hits and nothing evicted", got.Cache)
	}
	for _, id := range []string{"t1", "t2", "t3"} {
		if !reflect.DeepEqual(first.Keywords[id], got.Keywords[id]) {
			t.Errorf("%s keywords moved:\n%v\n%v", id, first.Keywords[id], got.Keywords[id])
		}
	}
}

func TestLayouterReset(t *testing.T) {
	l := NewLayouter(DefaultOptions())
	b := mapBounds()
	l.Compute(sampleTopics(), b)
	l.Reset()
	if l.Cache().Len() != 0 {
		t.Fatalf("cache len after Reset = %d", l.Cache().Len())
	}
	got := l.Compute(sampleTopics(), b)
	if got.Cache.Hits != 0 {
		t.Errorf("Hits after Reset = %d, want 0", got.Cache.Hits)
	}
}

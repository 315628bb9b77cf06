package radial

import (
	"math"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/scatter"
	"github.com/matzehuels/ripple/pkg/topic"
)

const (
	ringJitter        = 18.0
	keywordJitter     = 30.0
	keywordWedge      = math.Pi / 6
	keywordAngleNoise = keywordWedge * 0.35
	topicPushPad      = 6.0
	keywordPushPad    = 4.0
	minAvailable      = 120.0
)

// KeywordPosition is one keyword satellite in the map view.
type KeywordPosition struct {
	Keyword string  `json:"keyword"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Rings describes the concentric bands of a map frame.
type Rings struct {
	Center       geom.Point
	Outer        float64 // furthest keyword centre
	Topic        float64 // topic ring
	KeywordInner float64
	KeywordSpan  float64
}

// CacheStats counts keyword cache traffic for one frame.
type CacheStats struct {
	Hits    int
	Misses  int
	Evicted int
}

// Layout is one computed map frame.
type Layout struct {
	Center   geom.Point                   `json:"center"`
	Topics   map[string]geom.Disc         `json:"topics"`
	Keywords map[string][]KeywordPosition `json:"keywords"`

	Order    []string              `json:"-"`
	Rings    Rings                 `json:"-"`
	Cache    CacheStats            `json:"-"`
	Degraded []scatter.Degradation `json:"-"`
}

// ComputeRings derives the ring geometry for b.
func ComputeRings(b geom.Bounds, opts Options) Rings {
	opts = opts.withDefaults()
	c := b.Center()
	available := max(minAvailable, math.Min(c.X-b.MarginX, c.Y-b.MarginY))
	outer := available - opts.KeywordRadius - 10
	ring := max(opts.TopicRadius+40, outer*0.6)

	inner := ring + opts.TopicRadius + 50
	if inner > outer-40 {
		inner = ring + opts.TopicRadius + 20
	}
	return Rings{
		Center:       c,
		Outer:        outer,
		Topic:        ring,
		KeywordInner: inner,
		KeywordSpan:  max(outer-inner, 40),
	}
}

// Layouter computes map frames and carries the keyword cache between them.
// It is not safe for concurrent use.
type Layouter struct {
	opts  Options
	cache *KeywordCache
}

// NewLayouter returns a layouter with an empty cache.
func NewLayouter(opts Options) *Layouter {
	return &Layouter{opts: opts.withDefaults(), cache: NewKeywordCache()}
}

// Options returns the geometry in effect.
func (l *Layouter) Options() Options { return l.opts }

// Cache exposes the keyword cache.
func (l *Layouter) Cache() *KeywordCache { return l.cache }

// Reset drops every cached keyword position.
func (l *Layouter) Reset() {
	l.cache.Reset()
}

// Compute lays out one frame. Topic positions are rebuilt from scratch;
// keyword positions come from the cache, verbatim, for as long as their key
// persists, even when the bounds change between frames. Only keys absent from
// topics are evicted.
func (l *Layouter) Compute(topics []topic.Topic, b geom.Bounds) Layout {
	topics = topic.Normalize(topics)
	rings := ComputeRings(b, l.opts)
	out := Layout{
		Center:   rings.Center,
		Topics:   make(map[string]geom.Disc, len(topics)),
		Keywords: make(map[string][]KeywordPosition, len(topics)),
		Order:    topic.IDs(topics),
		Rings:    rings,
	}

	if len(topics) == 0 {
		out.Cache.Evicted += l.cache.Reset()
		return out
	}

	f := frame{opts: l.opts, bounds: b, rings: rings, cache: l.cache, live: map[KeywordKey]struct{}{}}
	step := 2 * math.Pi / float64(len(topics))
	for i, t := range topics {
		angle := f.placeTopic(i, t.ID, step, &out)
		f.placeKeywords(t, angle, &out)
	}

	out.Cache.Hits = f.hits
	out.Cache.Misses = f.misses
	out.Cache.Evicted += l.cache.Prune(f.live)
	return out
}

// frame holds the per-Compute working set.
type frame struct {
	opts     Options
	bounds   geom.Bounds
	rings    Rings
	cache    *KeywordCache
	occupied []geom.Disc
	live     map[KeywordKey]struct{}
	hits     int
	misses   int
}

// place pushes p out of the circles placed so far and registers it.
func (f *frame) place(p geom.Point, radius float64) geom.Point {
	p = PushOut(p, radius, f.occupied, f.rings.Center, f.bounds, f.opts)
	f.occupied = append(f.occupied, geom.Disc{X: p.X, Y: p.Y, Radius: radius})
	return p
}

// placeTopic positions topic i and returns its unpushed angle, which the
// keyword wedge is centred on.
func (f *frame) placeTopic(i int, id string, step float64, out *Layout) float64 {
	maxJitter := math.Min(step*0.35, keywordWedge)
	angle := float64(i)*step - math.Pi/2 + geom.Jitter(id, "topic-angle", maxJitter)

	ring := f.rings.Topic
	radial := geom.Clamp(ring+geom.Jitter(id, "topic-radius", ringJitter), ring-ringJitter, ring+ringJitter)

	c := f.rings.Center
	p := f.place(geom.Point{X: c.X + radial*math.Cos(angle), Y: c.Y + radial*math.Sin(angle)}, f.opts.TopicRadius+topicPushPad)
	out.Topics[id] = geom.Disc{X: p.X, Y: p.Y, Radius: f.opts.TopicRadius}
	return angle
}

func (f *frame) placeKeywords(t topic.Topic, angle float64, out *Layout) {
	keywords := topic.Keywords(t)
	if len(keywords) > f.opts.MaxKeywords {
		keywords = keywords[:f.opts.MaxKeywords]
	}
	positions := make([]KeywordPosition, 0, len(keywords))
	radius := f.opts.KeywordRadius + keywordPushPad

	for k, kw := range keywords {
		key := KeywordKey{TopicID: t.ID, Keyword: kw, Index: k}
		f.live[key] = struct{}{}

		p, ok := f.cache.Get(key)
		if ok {
			f.hits++
			f.occupied = append(f.occupied, geom.Disc{X: p.X, Y: p.Y, Radius: radius})
		} else {
			f.misses++
			p = f.placeKeyword(key, k, len(keywords), angle, radius, out)
			f.cache.Put(key, p)
		}
		positions = append(positions, KeywordPosition{Keyword: kw, X: p.X, Y: p.Y})
	}
	out.Keywords[t.ID] = positions
}

// placeKeyword computes a fresh keyword position. A keyword that still
// collides after push-out is re-placed by a seeded search keyed by its cache
// key.
func (f *frame) placeKeyword(key KeywordKey, k, count int, angle, radius float64, out *Layout) geom.Point {
	seed := key.String()
	r := f.rings

	t := 0.5
	radial := r.KeywordInner + r.KeywordSpan/2
	if count > 1 {
		t = float64(k) / float64(count-1)
		radial = r.KeywordInner + float64(k)*r.KeywordSpan/float64(count-1)
	}
	kwAngle := angle - keywordWedge + t*2*keywordWedge + geom.Jitter(seed, "kw-angle", keywordAngleNoise)
	radial = geom.Clamp(radial+geom.Jitter(seed, "kw-radius", keywordJitter), r.KeywordInner, r.Outer)

	p := PushOut(geom.Point{X: r.Center.X + radial*math.Cos(kwAngle), Y: r.Center.Y + radial*math.Sin(kwAngle)},
		radius, f.occupied, r.Center, f.bounds, f.opts)
	if !geom.ClearOfDiscs(p, radius, f.occupied, f.opts.PushGap) {
		placement := FindSeededPosition(radius, f.occupied, f.bounds, seed, f.opts)
		p = placement.Point
		if placement.Degraded() {
			out.Degraded = append(out.Degraded, scatter.Degradation{
				TopicID: key.TopicID,
				Reason:  "keyword " + key.Keyword + ": " + placement.Reason,
			})
		}
	}
	f.occupied = append(f.occupied, geom.Disc{X: p.X, Y: p.Y, Radius: radius})
	return p
}

package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/observability"
	"github.com/matzehuels/ripple/pkg/radial"
	"github.com/matzehuels/ripple/pkg/scatter"
	"github.com/matzehuels/ripple/pkg/topic"
)

// Options groups the tuning of both views.
type Options struct {
	Scatter scatter.Options `mapstructure:"scatter" json:"scatter"`
	Radial  radial.Options  `mapstructure:"radial" json:"radial"`
	Palette []string        `mapstructure:"palette" json:"palette"`
}

// DefaultOptions returns the stock tuning of both views.
func DefaultOptions() Options {
	return Options{
		Scatter: scatter.DefaultOptions(),
		Radial:  radial.DefaultOptions(),
		Palette: DefaultPalette,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithOptions replaces the layout tuning.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithLogger sets the logger. Degraded placements are logged at warn level
// and update summaries at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the generator used for scatter placement. Tests pass a
// seeded one for reproducible layouts.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// Engine holds the layout state of one canvas.
type Engine struct {
	opts   Options
	logger *log.Logger
	rng    *rand.Rand

	scatter *scatter.Controller
	radial  *radial.Layouter
	colors  *colorMap

	last *Snapshot
}

// New returns an engine with empty state.
func New(opts ...Option) *Engine {
	e := &Engine{opts: DefaultOptions(), logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.scatter = scatter.NewController(e.opts.Scatter, e.rng)
	e.radial = radial.NewLayouter(e.opts.Radial)
	e.colors = newColorMap(e.opts.Palette)
	return e
}

// Reset forgets every circle, keyword position and colour.
func (e *Engine) Reset() {
	e.scatter.Reset()
	e.radial.Reset()
	e.colors.reset()
	e.last = nil
	e.logger.Debug("layout reset")
}

// Last returns the most recent snapshot, or nil before the first update.
func (e *Engine) Last() *Snapshot { return e.last }

// Update lays out topics for the viewport. A zero viewport selects
// [DefaultViewport]. Topics without an id, or repeating an earlier id, are
// given a synthetic one. The only error is an invalid viewport.
func (e *Engine) Update(ctx context.Context, topics []topic.Topic, vp Viewport) (*Snapshot, error) {
	if vp == (Viewport{}) {
		vp = DefaultViewport()
	}
	if err := apperrors.ValidateViewport(vp.Width, vp.Height); err != nil {
		return nil, err
	}

	start := time.Now()
	topics = topic.Normalize(topics)
	hooks := observability.Layout()
	hooks.OnUpdateStart(ctx, len(topics))

	digest := topic.Digest(topics)
	if e.last != nil && e.last.Digest == digest && e.last.Viewport == vp {
		snap := *e.last
		snap.Stats.Skipped = true
		snap.Stats.Duration = time.Since(start)
		hooks.OnUpdateComplete(ctx, observability.UpdateStats{Topics: len(topics), Skipped: true}, snap.Stats.Duration)
		e.logger.Debug("topics unchanged, reusing layout", "topics", len(topics))
		return &snap, nil
	}

	sb := ScatterBounds(vp)
	sc := e.scatter.Update(topics, sb)
	height := CanvasHeight(sc.Positions, sb.Height)
	mb := e.opts.Radial.Bounds(vp.Width, height)
	mp := e.radial.Compute(topics, mb)

	snap := &Snapshot{
		Scatter:  sc.Positions,
		Map:      mp,
		Canvas:   Canvas{Width: vp.Width, Height: height, MapWidth: mb.Width},
		Colors:   e.colors.assign(sc.Order),
		Order:    sc.Order,
		Degraded: []Degradation{},
		Digest:   digest,
		Viewport: vp,
		Stats: Stats{
			Topics:         len(topics),
			Created:        sc.Count(scatter.Created),
			Kept:           sc.Count(scatter.Kept),
			Resized:        sc.Count(scatter.Resized),
			Moved:          sc.Count(scatter.Moved),
			Passes:         sc.Passes,
			Converged:      sc.Converged,
			KeywordHits:    mp.Cache.Hits,
			KeywordMisses:  mp.Cache.Misses,
			KeywordEvicted: mp.Cache.Evicted,
			Quality:        Measure(sc.Positions),
		},
	}
	for _, d := range sc.Degraded {
		snap.Degraded = append(snap.Degraded, Degradation{View: ViewScatter, TopicID: d.TopicID, Reason: d.Reason})
	}
	for _, d := range mp.Degraded {
		snap.Degraded = append(snap.Degraded, Degradation{View: ViewMap, TopicID: d.TopicID, Reason: d.Reason})
	}
	for _, d := range snap.Degraded {
		e.logger.Warn("degraded placement", "view", d.View, "topic", d.TopicID, "reason", d.Reason)
		hooks.OnPlacementDegraded(ctx, d.View, d.TopicID, d.Reason)
	}

	cacheHooks := observability.KeywordCache()
	cacheHooks.OnKeywordCacheHit(ctx, mp.Cache.Hits)
	cacheHooks.OnKeywordCacheMiss(ctx, mp.Cache.Misses)
	cacheHooks.OnKeywordCacheEvict(ctx, mp.Cache.Evicted)

	snap.Stats.Duration = time.Since(start)
	hooks.OnUpdateComplete(ctx, observability.UpdateStats{
		Topics:   snap.Stats.Topics,
		Created:  snap.Stats.Created,
		Moved:    snap.Stats.Moved,
		Degraded: len(snap.Degraded),
		Passes:   snap.Stats.Passes,
	}, snap.Stats.Duration)

	e.logger.Debug("updated layout",
		"topics", snap.Stats.Topics,
		"created", snap.Stats.Created,
		"moved", snap.Stats.Moved,
		"passes", snap.Stats.Passes,
		"min_gap", snap.Stats.Quality.MinGap,
		"duration", snap.Stats.Duration)

	e.last = snap
	return snap, nil
}

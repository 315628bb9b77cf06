package engine

import (
	"time"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/radial"
)

// Scatter canvas geometry.
const (
	DefaultViewportWidth  = 1400.0
	DefaultViewportHeight = 900.0

	// ChromeHeight is the viewport height taken by the recording controls.
	ChromeHeight     = 160.0
	MinScatterHeight = 400.0
	ScatterMargin    = 40.0

	// CanvasPadding is kept below the lowest circle; MaxCanvasHeight caps
	// the scrollable canvas.
	CanvasPadding   = 80.0
	MaxCanvasHeight = 3200.0
)

// Viewport is the visible browser area in pixels.
type Viewport struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// DefaultViewport is used when a caller passes a zero viewport.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
}

// ScatterBounds returns the placement bounds of the scatter view.
func ScatterBounds(vp Viewport) geom.Bounds {
	return geom.Bounds{
		Width:   vp.Width,
		Height:  max(vp.Height-ChromeHeight, MinScatterHeight),
		MarginX: ScatterMargin,
		MarginY: ScatterMargin,
	}
}

// CanvasHeight returns the scrollable canvas height for the given scatter
// circles: room for the lowest circle plus padding, capped at
// MaxCanvasHeight, and never less than minHeight.
func CanvasHeight(positions map[string]geom.Circle, minHeight float64) float64 {
	if len(positions) == 0 {
		return minHeight
	}
	bottom := 0.0
	for _, c := range positions {
		bottom = max(bottom, c.Y+c.Radius())
	}
	return max(min(bottom+CanvasPadding, MaxCanvasHeight), minHeight)
}

// Canvas is the size of the drawn area. The map view may be wider than the
// viewport.
type Canvas struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	MapWidth float64 `json:"map_width"`
}

// Degradation is a placement that could not keep its clearance.
type Degradation struct {
	View    string `json:"view"`
	TopicID string `json:"topic_id"`
	Reason  string `json:"reason"`
}

// Quality summarizes the pairwise boundary gaps of the scatter view.
type Quality struct {
	MinGap   float64 `json:"min_gap"`
	MeanGap  float64 `json:"mean_gap"`
	Overlaps int     `json:"overlaps"`
}

// Stats describes how a snapshot was produced.
type Stats struct {
	Topics    int  `json:"topics"`
	Created   int  `json:"created"`
	Kept      int  `json:"kept"`
	Resized   int  `json:"resized"`
	Moved     int  `json:"moved"`
	Passes    int  `json:"relax_passes"`
	Converged bool `json:"converged"`

	KeywordHits    int `json:"keyword_hits"`
	KeywordMisses  int `json:"keyword_misses"`
	KeywordEvicted int `json:"keyword_evicted"`

	Quality  Quality       `json:"quality"`
	Duration time.Duration `json:"duration_ns"`
	Skipped  bool          `json:"skipped"`
}

// Snapshot is the result of one update. Snapshots are shared with the
// engine and must be treated as read-only.
type Snapshot struct {
	Scatter  map[string]geom.Circle `json:"scatter"`
	Map      radial.Layout          `json:"map"`
	Canvas   Canvas                 `json:"canvas"`
	Colors   map[string]string      `json:"colors"`
	Order    []string               `json:"order"`
	Degraded []Degradation          `json:"degraded"`
	Digest   string                 `json:"digest"`
	Viewport Viewport               `json:"viewport"`
	Stats    Stats                  `json:"stats"`
}

// Degraded views.
const (
	ViewScatter = "scatter"
	ViewMap     = "map"
)

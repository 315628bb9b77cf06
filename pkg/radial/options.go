package radial

import "github.com/matzehuels/ripple/pkg/geom"

// Default map geometry.
const (
	DefaultTopicRadius   = 60.0
	DefaultKeywordRadius = 28.0
	DefaultMarginX       = 220.0
	DefaultMarginY       = 180.0
	DefaultMinWidth      = 820.0
	DefaultMaxKeywords   = 6
	DefaultPushFactor    = 1.0
	DefaultPushRetries   = 6
	DefaultPushGap       = 4.0
	DefaultEdgePad       = 32.0
	DefaultSeededTrials  = 600
	DefaultSeededPadding = 12.0
)

// Options tunes the map layout.
type Options struct {
	TopicRadius   float64 `mapstructure:"topic_radius" json:"topic_radius"`
	KeywordRadius float64 `mapstructure:"keyword_radius" json:"keyword_radius"`
	MarginX       float64 `mapstructure:"margin_x" json:"margin_x"`
	MarginY       float64 `mapstructure:"margin_y" json:"margin_y"`
	MinWidth      float64 `mapstructure:"min_width" json:"min_width"`
	MaxKeywords   int     `mapstructure:"max_keywords" json:"max_keywords"`

	// PushFactor scales the overlap each push-out step moves a circle by.
	PushFactor  float64 `mapstructure:"push_factor" json:"push_factor"`
	PushRetries int     `mapstructure:"push_retries" json:"push_retries"`
	PushGap     float64 `mapstructure:"push_gap" json:"push_gap"`
	EdgePad     float64 `mapstructure:"edge_pad" json:"edge_pad"`

	SeededTrials  int     `mapstructure:"seeded_trials" json:"seeded_trials"`
	SeededPadding float64 `mapstructure:"seeded_padding" json:"seeded_padding"`
}

// DefaultOptions returns the stock map geometry.
func DefaultOptions() Options {
	return Options{
		TopicRadius:   DefaultTopicRadius,
		KeywordRadius: DefaultKeywordRadius,
		MarginX:       DefaultMarginX,
		MarginY:       DefaultMarginY,
		MinWidth:      DefaultMinWidth,
		MaxKeywords:   DefaultMaxKeywords,
		PushFactor:    DefaultPushFactor,
		PushRetries:   DefaultPushRetries,
		PushGap:       DefaultPushGap,
		EdgePad:       DefaultEdgePad,
		SeededTrials:  DefaultSeededTrials,
		SeededPadding: DefaultSeededPadding,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TopicRadius <= 0 {
		o.TopicRadius = d.TopicRadius
	}
	if o.KeywordRadius <= 0 {
		o.KeywordRadius = d.KeywordRadius
	}
	if o.MarginX < 0 {
		o.MarginX = d.MarginX
	}
	if o.MarginY < 0 {
		o.MarginY = d.MarginY
	}
	if o.MinWidth < 0 {
		o.MinWidth = d.MinWidth
	}
	if o.MaxKeywords <= 0 {
		o.MaxKeywords = d.MaxKeywords
	}
	if o.PushFactor <= 0 {
		o.PushFactor = d.PushFactor
	}
	if o.PushRetries <= 0 {
		o.PushRetries = d.PushRetries
	}
	if o.PushGap < 0 {
		o.PushGap = d.PushGap
	}
	if o.EdgePad < 0 {
		o.EdgePad = d.EdgePad
	}
	if o.SeededTrials <= 0 {
		o.SeededTrials = d.SeededTrials
	}
	if o.SeededPadding < 0 {
		o.SeededPadding = d.SeededPadding
	}
	return o
}

// Bounds returns the map canvas for a viewport width and a canvas height.
// The map is never narrower than MinWidth.
func (o Options) Bounds(viewportWidth, height float64) geom.Bounds {
	o = o.withDefaults()
	return geom.Bounds{
		Width:   max(viewportWidth, o.MinWidth),
		Height:  height,
		MarginX: o.MarginX,
		MarginY: o.MarginY,
	}
}

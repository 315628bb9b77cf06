package preview

import (
	"io"
	"math"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/radial"
	"github.com/matzehuels/ripple/pkg/topic"
)

// Views and formats.
const (
	ViewScatter = "scatter"
	ViewMap     = "map"

	FormatSVG = "svg"
	FormatPNG = "png"
)

var (
	supportedViews   = map[string]bool{ViewScatter: true, ViewMap: true}
	supportedFormats = map[string]bool{FormatSVG: true, FormatPNG: true}
)

// Drawing constants.
const (
	background   = "#1e1e2e"
	textColor    = "#f8f8f2"
	mutedColor   = "#a0a0b0"
	spokeColor   = "rgba(255, 255, 255, 0.3)"
	rippleRing   = 50.0
	labelSize    = 16.0
	minLabelSize = 11.0
	captionSize  = 11.0
	captionWidth = 28
)

// Render writes one view of snap in the given format. topics supplies the
// labels; it should be the list the snapshot was computed from.
func Render(w io.Writer, snap *engine.Snapshot, topics []topic.Topic, view, format string) error {
	if err := ValidateView(view); err != nil {
		return err
	}
	if err := ValidateFormat(format); err != nil {
		return err
	}
	s := buildScene(snap, topics, view)
	switch format {
	case FormatPNG:
		return renderPNG(w, s)
	default:
		return renderSVG(w, s)
	}
}

// ValidateView checks a view name.
func ValidateView(view string) error {
	if !supportedViews[view] {
		return apperrors.New(apperrors.ErrCodeInvalidView, "unknown view %q (want scatter or map)", view)
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	return apperrors.ValidateFormat(format, supportedFormats)
}

// scene is a backend-neutral list of shapes.
type scene struct {
	width, height int
	circles       []circleShape
	lines         []lineShape
	labels        []labelShape
}

type circleShape struct {
	x, y, r     float64
	stroke      string
	fill        string
	strokeWidth float64
	dashed      bool
}

type lineShape struct {
	x1, y1, x2, y2 float64
	color          string
}

type labelShape struct {
	x, y  float64
	text  string
	size  float64
	color string
}

func buildScene(snap *engine.Snapshot, topics []topic.Topic, view string) scene {
	byID := make(map[string]topic.Topic, len(topics))
	for _, t := range topic.Normalize(topics) {
		byID[t.ID] = t
	}

	s := scene{height: ceil(snap.Canvas.Height)}
	if view == ViewMap {
		s.width = ceil(snap.Canvas.MapWidth)
		addMap(&s, snap, byID)
	} else {
		s.width = ceil(snap.Canvas.Width)
		addScatter(&s, snap, byID)
	}
	return s
}

func addScatter(s *scene, snap *engine.Snapshot, byID map[string]topic.Topic) {
	for _, id := range snap.Order {
		c, ok := snap.Scatter[id]
		if !ok {
			continue
		}
		color := colorOf(snap, id)
		r := c.Radius()
		s.circles = append(s.circles,
			circleShape{x: c.X, y: c.Y, r: r + rippleRing, stroke: color, strokeWidth: 1, dashed: true},
			circleShape{x: c.X, y: c.Y, r: r, stroke: color, fill: "rgba(255, 255, 255, 0.08)", strokeWidth: 2},
		)

		t := byID[id]
		text := topic.ClampText(topic.FormatLabel(t.Label), topic.DefaultClampWidth)
		s.labels = append(s.labels,
			labelShape{x: c.X, y: c.Y - 8, text: text, size: topic.FontSize(text, labelSize, minLabelSize), color: textColor},
			labelShape{x: c.X, y: c.Y + 14, text: topic.ClampText(topic.KeywordLine(t), captionWidth), size: captionSize, color: mutedColor},
		)
	}
}

func addMap(s *scene, snap *engine.Snapshot, byID map[string]topic.Topic) {
	for _, id := range snap.Order {
		d, ok := snap.Map.Topics[id]
		if !ok {
			continue
		}
		for _, kw := range snap.Map.Keywords[id] {
			s.lines = append(s.lines, lineShape{x1: d.X, y1: d.Y, x2: kw.X, y2: kw.Y, color: spokeColor})
		}
	}
	for _, id := range snap.Order {
		d, ok := snap.Map.Topics[id]
		if !ok {
			continue
		}
		color := colorOf(snap, id)
		s.circles = append(s.circles, circleShape{x: d.X, y: d.Y, r: d.Radius, stroke: color, fill: "rgba(255, 255, 255, 0.08)", strokeWidth: 2})
		text := topic.ClampText(topic.FormatLabel(byID[id].Label), topic.DefaultClampWidth)
		s.labels = append(s.labels, labelShape{x: d.X, y: d.Y, text: text, size: topic.FontSize(text, labelSize, minLabelSize), color: textColor})

		for _, kw := range snap.Map.Keywords[id] {
			s.circles = append(s.circles, circleShape{x: kw.X, y: kw.Y, r: radial.DefaultKeywordRadius, stroke: color, fill: background, strokeWidth: 1})
			s.labels = append(s.labels, labelShape{x: kw.X, y: kw.Y, text: topic.ClampText(kw.Keyword, 12), size: captionSize, color: mutedColor})
		}
	}
}

func colorOf(snap *engine.Snapshot, id string) string {
	if c, ok := snap.Colors[id]; ok {
		return c
	}
	return engine.DefaultPalette[0]
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

func round(v float64) int {
	return int(math.Round(v))
}

package preview

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/ripple/pkg/fonts"
)

func renderSVG(w io.Writer, s scene) error {
	canvas := svg.New(w)
	canvas.Start(s.width, s.height)
	canvas.Rect(0, 0, s.width, s.height, "fill:"+background)

	for _, l := range s.lines {
		canvas.Line(round(l.x1), round(l.y1), round(l.x2), round(l.y2),
			fmt.Sprintf("stroke:%s;stroke-width:1.5", l.color))
	}
	for _, c := range s.circles {
		fill := c.fill
		if fill == "" {
			fill = "none"
		}
		style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", fill, c.stroke, c.strokeWidth)
		if c.dashed {
			style += ";stroke-dasharray:4 6;stroke-opacity:0.4"
		}
		canvas.Circle(round(c.x), round(c.y), round(c.r), style)
	}
	for _, l := range s.labels {
		if l.text == "" {
			continue
		}
		canvas.Text(round(l.x), round(l.y), l.text,
			fmt.Sprintf("fill:%s;font-size:%gpx;font-family:%s;text-anchor:middle;dominant-baseline:middle", l.color, l.size, fonts.FontFamily))
	}

	canvas.End()
	return nil
}

package preview

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"git.sr.ht/~sbinet/gg"

	"github.com/matzehuels/ripple/pkg/fonts"
)

func renderPNG(w io.Writer, s scene) error {
	dc := gg.NewContext(max(s.width, 1), max(s.height, 1))
	dc.SetColor(parseColor(background))
	dc.Clear()

	for _, l := range s.lines {
		dc.SetColor(parseColor(l.color))
		dc.SetLineWidth(1.5)
		dc.DrawLine(l.x1, l.y1, l.x2, l.y2)
		dc.Stroke()
	}
	for _, c := range s.circles {
		if c.fill != "" {
			dc.SetColor(parseColor(c.fill))
			dc.DrawCircle(c.x, c.y, c.r)
			dc.Fill()
		}
		stroke := parseColor(c.stroke)
		if c.dashed {
			stroke = fade(stroke, 0.4)
		}
		dc.SetColor(stroke)
		dc.SetLineWidth(c.strokeWidth)
		dc.DrawCircle(c.x, c.y, c.r)
		dc.Stroke()
	}
	for _, l := range s.labels {
		if l.text == "" {
			continue
		}
		face, err := fonts.Face(l.size)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.SetColor(parseColor(l.color))
		dc.DrawStringAnchored(l.text, l.x, l.y, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// parseColor understands "#rrggbb" and "rgba(r, g, b, a)". Anything else is
// drawn white.
func parseColor(s string) color.RGBA {
	s = strings.TrimSpace(s)
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
		return color.RGBA{r, g, b, 0xff}
	}
	var a float64
	if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
		return premultiply(r, g, b, a)
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// premultiply converts straight alpha to the premultiplied form color.RGBA
// expects.
func premultiply(r, g, b uint8, a float64) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(a * 255),
	}
}

// fade scales a premultiplied colour's opacity by f.
func fade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

package geom

import "math"

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Circle is a placed circle. Size is the diameter.
type Circle struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Radius returns half the diameter.
func (c Circle) Radius() float64 { return c.Size / 2 }

// Center returns the circle centre.
func (c Circle) Center() Point { return Point{X: c.X, Y: c.Y} }

// At returns a copy of c moved to p.
func (c Circle) At(p Point) Circle {
	c.X, c.Y = p.X, p.Y
	return c
}

// Disc is a circle described by its radius, as used by the map view where
// every topic and keyword has a fixed radius.
type Disc struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Center returns the disc centre.
func (d Disc) Center() Point { return Point{X: d.X, Y: d.Y} }

// Bounds is the usable canvas rectangle for one placement pass.
type Bounds struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	MarginX float64 `json:"margin_x"`
	MarginY float64 `json:"margin_y"`
}

// Center returns the middle of the canvas.
func (b Bounds) Center() Point { return Point{X: b.Width / 2, Y: b.Height / 2} }

// Inset returns the interval [lo, hi] available to a centre coordinate when
// the circle must keep edge pixels from both sides of a dimension of length
// dim. When the interval is empty both ends collapse onto the midpoint.
func Inset(dim, edge float64) (lo, hi float64) {
	lo, hi = edge, dim-edge
	if hi < lo {
		mid := dim / 2
		return mid, mid
	}
	return lo, hi
}

// ClampInside clamps p so that a circle of the given radius plus margins stays
// inside b.
func (b Bounds) ClampInside(p Point, radius float64) Point {
	xlo, xhi := Inset(b.Width, radius+b.MarginX)
	ylo, yhi := Inset(b.Height, radius+b.MarginY)
	return Point{X: Clamp(p.X, xlo, xhi), Y: Clamp(p.Y, ylo, yhi)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Gap returns the distance between the boundaries of two circles. Negative
// values mean the circles intersect.
func Gap(a, b Circle) float64 {
	return Distance(a.Center(), b.Center()) - a.Radius() - b.Radius()
}

// Clear reports whether a circle of radius r at p keeps at least minGap
// between its boundary and every circle in others.
func Clear(p Point, r float64, others []Circle, minGap float64) bool {
	for _, o := range others {
		if Distance(p, o.Center()) < r+o.Radius()+minGap {
			return false
		}
	}
	return true
}

// ClearOfDiscs is [Clear] for discs.
func ClearOfDiscs(p Point, r float64, others []Disc, minGap float64) bool {
	for _, o := range others {
		if Distance(p, o.Center()) < r+o.Radius+minGap {
			return false
		}
	}
	return true
}

package radial

import (
	"math"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/scatter"
)

// minDistance stands in for a zero centre distance.
const minDistance = 1e-4

// PushOut moves a circle of the given radius at p away from center until it
// clears every disc in occupied by opts.PushGap, or until opts.PushRetries
// rounds have run. Each overlap found pushes the point outward by the overlap
// times opts.PushFactor. The result is clamped so the circle stays
// opts.EdgePad inside b. occupied is not modified.
func PushOut(p geom.Point, radius float64, occupied []geom.Disc, center geom.Point, b geom.Bounds, opts Options) geom.Point {
	opts = opts.withDefaults()
	for range opts.PushRetries {
		overlapped := false
		for _, o := range occupied {
			dist := max(geom.Distance(p, o.Center()), minDistance)
			want := radius + o.Radius + opts.PushGap
			if dist >= want {
				continue
			}
			overlapped = true
			ux, uy := outward(p, center, o.Center())
			push := (want - dist) * opts.PushFactor
			p.X += ux * push
			p.Y += uy * push
		}
		if !overlapped {
			break
		}
	}
	return clampEdge(p, radius, b, opts.EdgePad)
}

// outward returns the unit vector from center towards p. A point sitting on
// the centre is pushed away from the disc it overlaps instead, and along +x
// when that is degenerate too.
func outward(p, center, other geom.Point) (float64, float64) {
	for _, from := range []geom.Point{center, other} {
		dx, dy := p.X-from.X, p.Y-from.Y
		if l := math.Hypot(dx, dy); l > 0 {
			return dx / l, dy / l
		}
	}
	return 1, 0
}

func clampEdge(p geom.Point, radius float64, b geom.Bounds, pad float64) geom.Point {
	xlo, xhi := geom.Inset(b.Width, radius+pad)
	ylo, yhi := geom.Inset(b.Height, radius+pad)
	return geom.Point{X: geom.Clamp(p.X, xlo, xhi), Y: geom.Clamp(p.Y, ylo, yhi)}
}

// FindSeededPosition searches for a centre for a circle of the given radius
// that keeps opts.SeededPadding from every placed disc. Trials are drawn from
// [geom.UnitN] keyed by seed, so equal inputs give equal results. When every
// trial is rejected the first trial point is returned, flagged degraded.
func FindSeededPosition(radius float64, placed []geom.Disc, b geom.Bounds, seed string, opts Options) scatter.Placement {
	opts = opts.withDefaults()
	xlo, xhi := geom.Inset(b.Width, radius+opts.EdgePad)
	ylo, yhi := geom.Inset(b.Height, radius+opts.EdgePad)
	trial := func(i int) geom.Point {
		return geom.Point{
			X: xlo + geom.UnitN(seed+"-x", i)*(xhi-xlo),
			Y: ylo + geom.UnitN(seed+"-y", i)*(yhi-ylo),
		}
	}

	for i := range opts.SeededTrials {
		p := trial(i)
		if geom.ClearOfDiscs(p, radius, placed, opts.SeededPadding) {
			return scatter.Placement{Point: p, Status: scatter.StatusPlaced, Trials: i + 1}
		}
	}
	return scatter.Placement{
		Point:  trial(0),
		Status: scatter.StatusDegraded,
		Reason: "no free slot for seed " + seed,
		Trials: opts.SeededTrials,
	}
}

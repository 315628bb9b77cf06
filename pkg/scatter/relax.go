package scatter

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/ripple/pkg/geom"
)

const (
	// degenerateOffset separates circles that share a centre along +x.
	degenerateOffset = 0.01
	// relaxEpsilon absorbs rounding left over from earlier pushes.
	relaxEpsilon = 1e-9
)

// RelaxResult is the outcome of [Relax].
type RelaxResult struct {
	Positions map[string]geom.Circle
	Passes    int  // passes run
	Converged bool // the last pass moved nothing
}

// Relax pushes overlapping circles apart. Each pass visits every unordered
// pair (ids in sorted order) and, when the centres are closer than the sum of
// radii plus opts.RelaxGap, moves both circles away from each other by half
// the shortfall. After every pass each circle is clamped back inside b.
// Relaxation stops after a pass without pushes or after opts.RelaxPasses
// passes. The input map is not modified.
func Relax(positions map[string]geom.Circle, b geom.Bounds, opts Options) RelaxResult {
	opts = opts.withDefaults()
	out := maps.Clone(positions)
	if out == nil {
		out = map[string]geom.Circle{}
	}
	if len(out) <= 1 {
		return RelaxResult{Positions: out, Converged: true}
	}

	ids := slices.Sorted(maps.Keys(out))
	circles := make([]geom.Circle, len(ids))
	for i, id := range ids {
		circles[i] = out[id]
	}

	res := RelaxResult{}
	for pass := 0; pass < opts.RelaxPasses; pass++ {
		res.Passes++
		moved := false
		for i := range circles {
			for j := i + 1; j < len(circles); j++ {
				if separate(&circles[i], &circles[j], opts.RelaxGap) {
					moved = true
				}
			}
		}
		for i := range circles {
			circles[i] = circles[i].At(b.ClampInside(circles[i].Center(), circles[i].Radius()))
		}
		if !moved {
			res.Converged = true
			break
		}
	}

	for i, id := range ids {
		out[id] = circles[i]
	}
	res.Positions = out
	return res
}

// separate applies one symmetric correction to a pair and reports whether it
// moved them.
func separate(a, b *geom.Circle, gap float64) bool {
	minDist := a.Radius() + b.Radius() + gap
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = degenerateOffset, 0, degenerateOffset
	}
	if dist >= minDist-relaxEpsilon {
		return false
	}
	half := (minDist - dist) / 2
	nx, ny := dx/dist, dy/dist
	a.X -= nx * half
	a.Y -= ny * half
	b.X += nx * half
	b.Y += ny * half
	return true
}

package scatter

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/ripple/pkg/geom"
)

// Status tells whether a placement honours the clearance invariant.
type Status int

const (
	// StatusPlaced means the circle keeps the full clearance from every
	// circle it was placed against.
	StatusPlaced Status = iota
	// StatusDegraded means the search was exhausted and the circle was
	// stacked below the others; it may overlap.
	StatusDegraded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaced:
		return "placed"
	case StatusDegraded:
		return "degraded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Placement is the outcome of one placement search.
type Placement struct {
	geom.Point
	Status Status
	Reason string // set when Status is StatusDegraded
	Trials int    // random trials drawn
}

// Degraded reports whether the fallback was used.
func (p Placement) Degraded() bool { return p.Status == StatusDegraded }

// FindPosition searches for a centre for a new circle of diameter size that
// keeps opts.Clearance on both sides from every circle in occupied. It never
// modifies occupied and always returns a position.
func FindPosition(occupied []geom.Circle, size float64, b geom.Bounds, rng *rand.Rand, opts Options) Placement {
	opts = opts.withDefaults()
	radius := size / 2
	xlo, xhi := geom.Inset(b.Width, radius+b.MarginX)
	ylo, yhi := geom.Inset(b.Height, radius+b.MarginY)
	sample := func() geom.Point {
		return geom.Point{
			X: xlo + rng.Float64()*(xhi-xlo),
			Y: ylo + rng.Float64()*(yhi-ylo),
		}
	}

	if len(occupied) == 0 {
		return Placement{Point: sample(), Status: StatusPlaced, Trials: 1}
	}

	minGap := 2 * opts.Clearance
	for trial := 1; trial <= opts.MaxTrials; trial++ {
		p := sample()
		if geom.Clear(p, radius, occupied, minGap) {
			return Placement{Point: p, Status: StatusPlaced, Trials: trial}
		}
	}

	return stackBelow(occupied, size, b, rng, opts)
}

// stackBelow places the circle under the lowest occupied circle, jittered
// around the horizontal centre.
func stackBelow(occupied []geom.Circle, size float64, b geom.Bounds, rng *rand.Rand, opts Options) Placement {
	bottom := occupied[0].Y + occupied[0].Radius()
	for _, c := range occupied[1:] {
		bottom = max(bottom, c.Y+c.Radius())
	}
	jitter := rng.Float64()*opts.StackJitter - opts.StackJitter/2
	return Placement{
		Point: geom.Point{
			X: b.Width/2 + jitter,
			Y: bottom + size/2 + opts.StackGap,
		},
		Status: StatusDegraded,
		Reason: fmt.Sprintf("no free slot after %d trials among %d circles; stacked below", opts.MaxTrials, len(occupied)),
		Trials: opts.MaxTrials,
	}
}

package scatter

import (
	"maps"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/ripple/pkg/geom"
	"github.com/matzehuels/ripple/pkg/topic"
)

// Decision records what the controller did with one topic during an update.
type Decision int

const (
	// Kept means the previous position was reused unchanged.
	Kept Decision = iota
	// Resized means the size changed materially but the old position was
	// still free, so the circle grew or shrank in place.
	Resized
	// Moved means a resized circle collided at its old position and was
	// placed again.
	Moved
	// Created means the topic had no previous circle.
	Created
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Kept:
		return "kept"
	case Resized:
		return "resized"
	case Moved:
		return "moved"
	case Created:
		return "created"
	default:
		return "unknown"
	}
}

// Degradation names a topic whose placement fell back to stacking.
type Degradation struct {
	TopicID string `json:"topic_id"`
	Reason  string `json:"reason"`
}

// Result is the outcome of one [Controller.Update].
type Result struct {
	// Positions holds the final circle of every topic in the update.
	Positions map[string]geom.Circle
	// Order lists topic ids in input order.
	Order []string
	// Decisions maps each id to what happened to it before relaxation.
	Decisions map[string]Decision
	// Degraded lists placements that could not honour the clearance.
	Degraded []Degradation
	// Passes and Converged report the relaxation run.
	Passes    int
	Converged bool
}

// Count returns how many topics received decision d.
func (r Result) Count(d Decision) int {
	n := 0
	for _, got := range r.Decisions {
		if got == d {
			n++
		}
	}
	return n
}

// Controller keeps the scatter layout stable across updates of a topic list.
// It is not safe for concurrent use.
type Controller struct {
	opts  Options
	rng   *rand.Rand
	state map[string]geom.Circle
}

// NewController returns a controller with an empty layout. A nil rng gets a
// randomly seeded generator.
func NewController(opts Options, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{
		opts:  opts.withDefaults(),
		rng:   rng,
		state: map[string]geom.Circle{},
	}
}

// Options returns the tuning in effect.
func (c *Controller) Options() Options { return c.opts }

// Reset forgets every stored circle.
func (c *Controller) Reset() {
	c.state = map[string]geom.Circle{}
}

// Len returns the number of stored circles.
func (c *Controller) Len() int { return len(c.state) }

// State returns a copy of the stored layout.
func (c *Controller) State() map[string]geom.Circle {
	return maps.Clone(c.state)
}

// Update lays out topics against the previous state and replaces it. Topics
// are visited in input order; circles placed earlier in the same pass act as
// obstacles for later ones. Topics absent from the list are dropped.
func (c *Controller) Update(topics []topic.Topic, b geom.Bounds) Result {
	topics = topic.Normalize(topics)
	res := Result{
		Positions: make(map[string]geom.Circle, len(topics)),
		Order:     make([]string, 0, len(topics)),
		Decisions: make(map[string]Decision, len(topics)),
	}
	if len(topics) == 0 {
		c.Reset()
		res.Converged = true
		return res
	}

	placed := make([]geom.Circle, 0, len(topics))
	for _, t := range topics {
		size := c.opts.EstimateSize(t.Label, t.Keyphrases)
		circle, decision, degraded := c.settle(t.ID, size, placed, b)

		res.Order = append(res.Order, t.ID)
		res.Positions[t.ID] = circle
		res.Decisions[t.ID] = decision
		if degraded != nil {
			res.Degraded = append(res.Degraded, Degradation{TopicID: t.ID, Reason: degraded.Reason})
		}
		placed = append(placed, circle)
	}

	relaxed := Relax(res.Positions, b, c.opts)
	res.Positions = relaxed.Positions
	res.Passes = relaxed.Passes
	res.Converged = relaxed.Converged

	c.state = maps.Clone(res.Positions)
	return res
}

// settle decides the circle for one topic. The returned placement is non-nil
// only when a search fell back to stacking.
func (c *Controller) settle(id string, size float64, placed []geom.Circle, b geom.Bounds) (geom.Circle, Decision, *Placement) {
	prev, ok := c.state[id]
	if !ok {
		p := FindPosition(placed, size, b, c.rng, c.opts)
		return circleAt(p, size), Created, degradedOrNil(p)
	}

	if math.Abs(prev.Size-size) <= c.opts.ResizeTolerance {
		return geom.Circle{X: prev.X, Y: prev.Y, Size: size}, Kept, nil
	}

	if geom.Clear(prev.Center(), size/2, placed, 2*c.opts.Clearance) {
		return geom.Circle{X: prev.X, Y: prev.Y, Size: size}, Resized, nil
	}

	p := FindPosition(placed, size, b, c.rng, c.opts)
	return circleAt(p, size), Moved, degradedOrNil(p)
}

func circleAt(p Placement, size float64) geom.Circle {
	return geom.Circle{X: p.X, Y: p.Y, Size: size}
}

func degradedOrNil(p Placement) *Placement {
	if p.Degraded() {
		return &p
	}
	return nil
}

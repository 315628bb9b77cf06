// Package geom provides the shared 2D primitives used by the ripple layouts.
//
// # Circles and Bounds
//
// A [Circle] is a centre plus a diameter ([Circle.Size]); its radius is
// always derived, never stored, so a resize cannot leave the two out of sync.
// [Bounds] describes the usable canvas rectangle of a single placement pass:
// width and height in pixels plus the fixed horizontal and vertical margins
// that every circle keeps from the edges on top of its own radius.
//
// # Seeded randomness
//
// [Unit] maps a (seed, salt) pair to a reproducible value in [0, 1). It is
// used wherever visual stability across re-renders matters more than true
// randomness: ring jitter, keyword wedges and seeded placement. Free scatter
// placement uses math/rand/v2 instead.
//
//	jitter := (geom.Unit(topicID, "topic-angle") - 0.5) * maxJitter
package geom

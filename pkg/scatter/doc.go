// Package scatter implements the free "ripple" layout: topics drawn as
// circles scattered over the canvas without overlapping.
//
// # Overview
//
// The layout is built from three pieces:
//
//   - [EstimateSize] derives a circle diameter from the label and keyword
//     text, without measuring rendered text.
//   - [FindPosition] searches for a free spot for one new circle by bounded
//     rejection sampling, falling back to a vertical stack below the lowest
//     circle when the canvas is too crowded.
//   - [Relax] nudges a whole set of circles apart pairwise until nothing
//     overlaps or the pass budget runs out, then clamps them into bounds.
//
// [Controller] ties them together and is the only stateful part. It keeps the
// previous layout so that an update only moves what has to move: existing
// circles keep their position, resized circles stay put unless they now
// collide with a neighbour, and new topics are placed among the circles
// already settled in the same pass.
//
// # Degraded placements
//
// Placement never fails. When every trial is rejected the circle is stacked
// below the others and the [Placement] carries [StatusDegraded] with a
// reason. This is the only situation in which two fresh circles may overlap;
// callers surface it as a status, not an error.
//
// # Randomness
//
// Placement trials use math/rand/v2. Pass a seeded generator to
// [NewController] for reproducible layouts (tests do this); the default
// generator is seeded randomly so a new session gets a new arrangement.
package scatter

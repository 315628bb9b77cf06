// Package radial computes the "map" view: topics on a jittered ring around
// the canvas centre with their keywords fanned out behind them.
//
// Every position is derived from the topic list and the canvas alone. Ring
// and wedge jitter come from [geom.Unit] seeded by topic id or keyword key, so
// an unchanged topic set always draws the same constellation. Each placed
// circle passes through [PushOut], which nudges it away from the canvas
// centre until it clears the circles already placed in the frame.
//
// The only state carried between frames is the [KeywordCache]: once a
// keyword has a position it keeps it for as long as the same topic lists the
// same keyword at the same index. [Layouter] owns the cache and prunes stale
// keys on every [Layouter.Compute].
package radial

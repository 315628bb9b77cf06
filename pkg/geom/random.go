package geom

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// defaultSeed replaces an empty seed so that anonymous callers still get a
// stable, non-degenerate sequence.
const defaultSeed = "seed"

// Unit returns a deterministic pseudo-random value in [0, 1) derived from
// seed and salt. Equal inputs always yield equal outputs, across processes
// and platforms.
func Unit(seed, salt string) float64 {
	if seed == "" {
		seed = defaultSeed
	}
	h := xxhash.Sum64String(seed + "-" + salt)
	// Top 53 bits give an exactly representable float64 in [0, 1).
	return float64(h>>11) / (1 << 53)
}

// UnitN is [Unit] with an integer salt, used for trial-indexed sequences.
func UnitN(seed string, n int) float64 {
	return Unit(seed, strconv.Itoa(n))
}

// Jitter maps Unit(seed, salt) onto [-span/2, span/2).
func Jitter(seed, salt string, span float64) float64 {
	return (Unit(seed, salt) - 0.5) * span
}

package engine

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/ripple/pkg/geom"
)

// Measure computes gap statistics over every pair of circles. Fewer than two
// circles yield the zero Quality.
func Measure(positions map[string]geom.Circle) Quality {
	ids := slices.Sorted(maps.Keys(positions))
	if len(ids) < 2 {
		return Quality{}
	}
	gaps := make([]float64, 0, len(ids)*(len(ids)-1)/2)
	q := Quality{}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			g := geom.Gap(positions[a], positions[b])
			if g < 0 {
				q.Overlaps++
			}
			gaps = append(gaps, g)
		}
	}
	q.MinGap = floats.Min(gaps)
	q.MeanGap = stat.Mean(gaps, nil)
	return q
}

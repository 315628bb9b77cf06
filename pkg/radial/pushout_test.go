package radial

import (
	"math"
	"testing"

	"github.com/matzehuels/ripple/pkg/geom"
)

func TestPushOut(t *testing.T) {
	b := geom.Bounds{Width: 1000, Height: 1000}
	center := geom.Point{X: 500, Y: 500}
	occupied := []geom.Disc{{X: 600, Y: 500, Radius: 30}}

	tests := []struct {
		name string
		p    geom.Point
		want geom.Point
	}{
		{"clear point stays", geom.Point{X: 800, Y: 500}, geom.Point{X: 800, Y: 500}},
		{"overlap pushed outward", geom.Point{X: 610, Y: 500}, geom.Point{X: 664, Y: 500}},
		{"inner overlap still pushed outward", geom.Point{X: 590, Y: 500}, geom.Point{X: 664, Y: 500}},
		{"clamped to edge pad", geom.Point{X: 5, Y: 5}, geom.Point{X: 62, Y: 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PushOut(tt.p, 30, occupied, center, b, DefaultOptions())
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("PushOut(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPushOutDegenerate(t *testing.T) {
	b := geom.Bounds{Width: 1000, Height: 1000}
	center := geom.Point{X: 500, Y: 500}
	occupied := []geom.Disc{{X: 500, Y: 500, Radius: 30}}

	got := PushOut(center, 30, occupied, center, b, DefaultOptions())
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("PushOut produced NaN: %v", got)
	}
	if got.X <= 500 || got.Y != 500 {
		t.Errorf("PushOut on a coincident centre = %v, want pushed along +x", got)
	}
}

func TestPushOutFactor(t *testing.T) {
	b := geom.Bounds{Width: 1000, Height: 1000}
	center := geom.Point{X: 500, Y: 500}
	occupied := []geom.Disc{{X: 600, Y: 500, Radius: 30}}
	opts := DefaultOptions()
	opts.PushFactor = 0.5
	opts.PushRetries = 1

	// One step of half the 54px overlap.
	got := PushOut(geom.Point{X: 610, Y: 500}, 30, occupied, center, b, opts)
	if math.Abs(got.X-637) > 1e-9 {
		t.Errorf("PushOut X = %v, want 637", got.X)
	}
}

func TestFindSeededPosition(t *testing.T) {
	b := geom.Bounds{Width: 1000, Height: 800}
	placed := []geom.Disc{{X: 500, Y: 400, Radius: 100}}

	a := FindSeededPosition(32, placed, b, "t1-Erhai-0", DefaultOptions())
	again := FindSeededPosition(32, placed, b, "t1-Erhai-0", DefaultOptions())
	if a != again {
		t.Errorf("seeded search is not reproducible: %v vs %v", a, again)
	}
	if a.Degraded() {
		t.Fatalf("unexpected degraded placement: %s", a.Reason)
	}
	if !geom.ClearOfDiscs(a.Point, 32, placed, DefaultSeededPadding) {
		t.Errorf("placement %v violates the padding", a.Point)
	}
	if a.X < 64 || a.X > 936 || a.Y < 64 || a.Y > 736 {
		t.Errorf("placement %v outside the edge pad", a.Point)
	}
}

func TestFindSeededPositionFallback(t *testing.T) {
	b := geom.Bounds{Width: 300, Height: 300}
	placed := []geom.Disc{{X: 150, Y: 150, Radius: 400}}

	got := FindSeededPosition(32, placed, b, "crowded", DefaultOptions())
	if !got.Degraded() {
		t.Fatalf("expected degraded placement, got %v", got)
	}
	want := geom.Point{
		X: 64 + geom.UnitN("crowded-x", 0)*172,
		Y: 64 + geom.UnitN("crowded-y", 0)*172,
	}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("fallback = %v, want trial 0 %v", got.Point, want)
	}
}

func TestKeywordKeyString(t *testing.T) {
	k := KeywordKey{TopicID: "t1", Keyword: "Erhai", Index: 2}
	if got := k.String(); got != "t1-Erhai-2" {
		t.Errorf("String() = %q, want %q", got, "t1-Erhai-2")
	}
}

package preview

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/topic"
)

func testSnapshot(t *testing.T) (*engine.Snapshot, []topic.Topic) {
	t.Helper()
	topics := []topic.Topic{
		{ID: "t1", Label: "TravelPlan", Keyphrases: []string{"Erhai", "Dali"}},
		{ID: "t2", Label: "Budget <&> Plan", Keyphrases: []string{"Costs"}},
	}
	e := engine.New(
		engine.WithLogger(log.New(io.Discard)),
		engine.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	snap, err := e.Update(context.Background(), topics, engine.DefaultViewport())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return snap, topics
}

func TestRenderSVG(t *testing.T) {
	snap, topics := testSnapshot(t)

	tests := []struct {
		view        string
		wantCircles int
		wantLines   int
	}{
		{ViewScatter, 4, 0}, // circle plus ripple ring per topic
		{ViewMap, 5, 3},     // topics plus keywords
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, snap, topics, tt.view, FormatSVG); err != nil {
				t.Fatalf("Render: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
				t.Fatalf("not an SVG document:\n%s", out)
			}
			if n := strings.Count(out, "<circle"); n != tt.wantCircles {
				t.Errorf("circles = %d, want %d", n, tt.wantCircles)
			}
			if n := strings.Count(out, "<line"); n != tt.wantLines {
				t.Errorf("lines = %d, want %d", n, tt.wantLines)
			}
			if strings.Contains(out, "<&>") {
				t.Error("label text was not escaped")
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	snap, topics := testSnapshot(t)

	var buf bytes.Buffer
	if err := Render(&buf, snap, topics, ViewMap, FormatPNG); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != int(snap.Canvas.MapWidth) || b.Dy() != int(snap.Canvas.Height) {
		t.Errorf("image size = %dx%d, want %vx%v", b.Dx(), b.Dy(), snap.Canvas.MapWidth, snap.Canvas.Height)
	}
}

func TestRenderRejectsUnknownInput(t *testing.T) {
	snap, topics := testSnapshot(t)

	if err := Render(io.Discard, snap, topics, "tower", FormatSVG); !apperrors.Is(err, apperrors.ErrCodeInvalidView) {
		t.Errorf("unknown view error = %v, want INVALID_VIEW", err)
	}
	if err := Render(io.Discard, snap, topics, ViewScatter, "pdf"); !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1e1e2e", color.RGBA{0x1e, 0x1e, 0x2e, 0xff}},
		{"rgba(255, 255, 255, 0.5)", color.RGBA{127, 127, 127, 127}},
		{"rgba(255,0,0,1)", color.RGBA{255, 0, 0, 255}},
		{"tomato", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := parseColor(tt.in); got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

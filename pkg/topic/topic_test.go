package topic

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := []Topic{
		{ID: "a", Label: "Alpha"},
		{ID: "", Label: "NoID"},
		{ID: "a", Label: "Duplicate"},
		{ID: "  ", Label: "Blank"},
	}

	got := IDs(Normalize(in))
	want := []string{"a", "topic-1", "topic-2", "topic-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize ids = %v, want %v", got, want)
	}

	if in[1].ID != "" || in[2].ID != "a" {
		t.Error("Normalize modified its input")
	}
}

func TestNormalizeSyntheticCollision(t *testing.T) {
	in := []Topic{
		{ID: "topic-1"},
		{ID: ""},
	}

	got := IDs(Normalize(in))
	if got[0] != "topic-1" {
		t.Errorf("real id rewritten: %v", got)
	}
	if got[1] == "topic-1" || got[1] == "" {
		t.Errorf("synthetic id collided: %v", got)
	}
}

func TestNormalizeRealIDWinsOverSynthetic(t *testing.T) {
	in := []Topic{
		{ID: "", Label: "NoID"},
		{ID: "topic-0", Label: "Upstream"},
	}

	got := IDs(Normalize(in))
	if got[1] != "topic-0" {
		t.Errorf("upstream id rewritten: %v", got)
	}
	if got[0] == "topic-0" || got[0] == "" {
		t.Errorf("synthetic id collided: %v", got)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TravelPlan", "Travel Plan"},
		{"BudgetPlan", "Budget Plan"},
		{"already spaced", "already spaced"},
		{"  lots   of\tspace ", "lots of space"},
		{"HTTPServer", "HTTPServer"},
		{"", ""},
		{"旅行计划", "旅行计划"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatLabel(tt.in); got != tt.want {
				t.Errorf("FormatLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "Travel Plan", 20, "Travel Plan"},
		{"empty", "   ", 20, ""},
		{"word boundary", "Weekend itinerary planning session", 20, "Weekend itinerary…"},
		{"no good boundary", "Supercalifragilistic expialidocious", 20, "Supercalifragilistic…"},
		{"wide runes", "洱海大理双廊古镇旅行攻略", 10, "洱海大理双…"},
		{"wide runes near a space", "大理双廊 古镇旅行攻略指南", 20, "大理双廊 古镇旅行攻…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampText(tt.in, tt.limit); got != tt.want {
				t.Errorf("ClampText(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"Travel", 16},
		{"Travel P", 16},
		{"Travel Pl", 15.2},
		{"A very very very long topic label", 11},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := FontSize(tt.text, 16, 11); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FontSize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

package topic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// FormatLabel turns a one-word camel-case label into spaced words
// ("TravelPlan" becomes "Travel Plan") and collapses whitespace.
func FormatLabel(label string) string {
	if label == "" {
		return ""
	}
	s := camelBoundary.ReplaceAllString(label, "$1 $2")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// DefaultClampWidth is the display width node labels are truncated to.
const DefaultClampWidth = 20

// ClampText truncates text to at most limit display cells, preferring to cut
// at a word boundary, and appends an ellipsis when anything was removed.
// Wide (CJK) characters count as two cells.
func ClampText(text string, limit int) string {
	input := strings.TrimSpace(text)
	if input == "" {
		return ""
	}
	if runewidth.StringWidth(input) <= limit {
		return input
	}
	truncated := runewidth.Truncate(input, limit, "")
	// The cut point is a character index, not a byte offset.
	if i := strings.LastIndex(truncated, " "); i >= 0 && utf8.RuneCountInString(truncated[:i]) > 8 {
		truncated = truncated[:i]
	}
	return strings.TrimSpace(truncated) + "…"
}

// FontSize returns a font size that shrinks by 0.8 per character beyond the
// eighth, never going below min.
func FontSize(text string, base, min float64) float64 {
	n := max(1, len([]rune(text)))
	if n <= 8 {
		return base
	}
	return max(min, base-float64(n-8)*0.8)
}

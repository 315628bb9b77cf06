package scatter

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/ripple/pkg/topic"
)

const (
	labelCharsPerLine   = 14
	keywordCharsPerLine = 28
	labelLineHeight     = 18
	keywordLineHeight   = 14
	textPadding         = 50
	heightScale         = 1.3
	widthPerChar        = 1.2
	maxWidthBonus       = 160
)

// EstimateSize returns the diameter of the circle for a topic with the given
// label and keyphrases, using the stock size band.
func EstimateSize(label string, keyphrases []string) float64 {
	return DefaultOptions().EstimateSize(label, keyphrases)
}

// EstimateSize returns the diameter of the circle for a topic, clamped to
// [o.BaseSize, o.MaxSize]. Character counts are in runes.
func (o Options) EstimateSize(label string, keyphrases []string) float64 {
	o = o.withDefaults()

	display := topic.FormatLabel(label)
	keywords := strings.Join(keyphrases, " ")
	labelLen := utf8.RuneCountInString(display)
	keywordLen := utf8.RuneCountInString(keywords)

	labelLines := max(1, ceilDiv(labelLen, labelCharsPerLine))
	keywordLines := max(1, ceilDiv(keywordLen, keywordCharsPerLine))

	estimatedHeight := float64(labelLines*labelLineHeight+keywordLines*keywordLineHeight) + textPadding
	widthScore := o.BaseSize + math.Min(float64(keywordLen)*widthPerChar, maxWidthBonus)

	size := max(o.BaseSize, estimatedHeight*heightScale, widthScore)
	return math.Min(size, o.MaxSize)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

package topic

import (
	"regexp"
	"strings"
)

// Keyword limits shared by the views.
const (
	MaxSummaryKeywords = 4
	MaxCaptionKeywords = 4
)

var summarySeparators = regexp.MustCompile(`[,，。.;]`)

// Keywords returns the satellite words of t, falling back in order to the
// point texts, fragments of the summary, and finally the formatted label.
// Empty strings are never returned; the result may be empty.
func Keywords(t Topic) []string {
	if kws := nonEmpty(t.Keyphrases); len(kws) > 0 {
		return kws
	}

	points := make([]string, 0, len(t.Points))
	for _, p := range t.Points {
		points = append(points, p.Text)
	}
	if kws := nonEmpty(points); len(kws) > 0 {
		return kws
	}

	if s := strings.TrimSpace(t.Summary); s != "" {
		kws := nonEmpty(summarySeparators.Split(s, -1))
		if len(kws) > MaxSummaryKeywords {
			kws = kws[:MaxSummaryKeywords]
		}
		if len(kws) > 0 {
			return kws
		}
	}

	if label := FormatLabel(t.Label); label != "" {
		return []string{label}
	}
	return nil
}

// KeywordLine returns the caption shown under a topic's label in the scatter
// view.
func KeywordLine(t Topic) string {
	if len(t.Keyphrases) > 0 {
		kws := t.Keyphrases
		if len(kws) > MaxCaptionKeywords {
			kws = kws[:MaxCaptionKeywords]
		}
		return strings.Join(kws, " • ")
	}
	if s := strings.TrimSpace(t.Summary); s != "" {
		return t.Summary
	}
	if len(t.Points) > 0 {
		return t.Points[0].Text
	}
	return FormatLabel(t.Label)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

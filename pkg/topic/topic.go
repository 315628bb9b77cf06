package topic

import (
	"fmt"
	"strings"
)

// Point is a single bullet of a topic's running notes.
type Point struct {
	Text string `json:"text" toml:"text"`
}

// Topic is an immutable snapshot of one extracted topic.
type Topic struct {
	ID         string   `json:"id" toml:"id"`
	Label      string   `json:"label" toml:"label"`
	Summary    string   `json:"summary,omitempty" toml:"summary"`
	Keyphrases []string `json:"keyphrases,omitempty" toml:"keyphrases"`
	Points     []Point  `json:"points,omitempty" toml:"points"`
}

// SyntheticID returns the identity substituted for the topic at index when
// the upstream record has no usable id.
func SyntheticID(index int) string {
	return fmt.Sprintf("topic-%d", index)
}

// Normalize returns a copy of topics in which every record has a non-empty,
// unique id. Missing ids, and ids already used earlier in the list, are
// replaced by [SyntheticID]. Real ids win over synthetic ones: a synthetic id
// that a later record already carries gets a numeric suffix instead. The
// input slice and its elements are not modified.
func Normalize(topics []Topic) []Topic {
	ids := make([]string, len(topics))
	taken := make(map[string]bool, len(topics))
	for i, t := range topics {
		if id := strings.TrimSpace(t.ID); id != "" && !taken[id] {
			ids[i] = id
			taken[id] = true
		}
	}

	out := make([]Topic, len(topics))
	for i, t := range topics {
		if ids[i] == "" {
			id := SyntheticID(i)
			for n := 0; taken[id]; n++ {
				id = fmt.Sprintf("%s-%d", SyntheticID(i), n)
			}
			ids[i] = id
			taken[id] = true
		}
		t.ID = ids[i]
		out[i] = t
	}
	return out
}

// IDs returns the ids of topics in list order.
func IDs(topics []Topic) []string {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}

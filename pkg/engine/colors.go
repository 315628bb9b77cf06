package engine

// DefaultPalette is the stock topic palette, from bright to faint.
var DefaultPalette = []string{
	"rgba(255, 255, 255, 0.95)",
	"rgba(255, 255, 255, 0.8)",
	"rgba(255, 255, 255, 0.7)",
	"rgba(255, 255, 255, 0.6)",
	"rgba(255, 255, 255, 0.5)",
}

// colorMap keeps the colour of a topic fixed for as long as it is present.
type colorMap struct {
	palette []string
	byID    map[string]string
}

func newColorMap(palette []string) *colorMap {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &colorMap{palette: palette, byID: map[string]string{}}
}

// assign gives new ids the palette entry of their list index and forgets ids
// that are gone. It returns a copy of the current assignment.
func (m *colorMap) assign(ids []string) map[string]string {
	live := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		live[id] = struct{}{}
		if _, ok := m.byID[id]; !ok {
			m.byID[id] = m.palette[i%len(m.palette)]
		}
	}
	out := make(map[string]string, len(ids))
	for id, c := range m.byID {
		if _, ok := live[id]; !ok {
			delete(m.byID, id)
			continue
		}
		out[id] = c
	}
	return out
}

func (m *colorMap) reset() {
	m.byID = map[string]string{}
}

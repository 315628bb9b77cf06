package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ripple/pkg/engine"
	"github.com/matzehuels/ripple/pkg/topic"
)

var (
	replayNewStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	replayMovedStyle = lipgloss.NewStyle().Foreground(colorYellow)
	replayDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Row states relative to the previous step.
const (
	rowNew   = "new"
	rowMoved = "moved"
	rowKept  = ""
)

// replayFrame is one replayed step.
type replayFrame struct {
	Snap   *engine.Snapshot
	Topics []topic.Topic
	// State maps topic ids to rowNew, rowMoved or rowKept.
	State map[string]string
}

// =============================================================================
// ReplayModel - step through a recorded session
// =============================================================================

// ReplayModel is the bubbletea model for `replay --interactive`.
type ReplayModel struct {
	Frames []replayFrame
	Step   int
	Offset int
	Height int
}

// NewReplayModel creates a model positioned on the first step.
func NewReplayModel(frames []replayFrame) ReplayModel {
	return ReplayModel{Frames: frames, Height: 15}
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.Step < len(m.Frames)-1 {
				m.Step++
				m.Offset = 0
			}
		case "left", "h", "p":
			if m.Step > 0 {
				m.Step--
				m.Offset = 0
			}
		case "home", "g":
			m.Step, m.Offset = 0, 0
		case "end", "G":
			m.Step, m.Offset = max(len(m.Frames)-1, 0), 0
		case "down", "j":
			if m.Offset+m.Height < m.rows() {
				m.Offset++
			}
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

func (m ReplayModel) rows() int {
	if len(m.Frames) == 0 {
		return 0
	}
	return len(m.Frames[m.Step].Snap.Order)
}

func (m ReplayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Replay step %d/%d", m.Step+1, len(m.Frames))))
	b.WriteString("\n")
	b.WriteString(replayDimStyle.Render("←/→ step  ↑/↓ scroll  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Frames) == 0 {
		b.WriteString(replayDimStyle.Render("no steps"))
		return b.String()
	}
	frame := m.Frames[m.Step]
	b.WriteString(statsLine(frame.Snap))
	b.WriteString("\n")

	labels := make(map[string]string, len(frame.Topics))
	for _, t := range topic.Normalize(frame.Topics) {
		labels[t.ID] = topic.ClampText(t.Label, 28)
	}

	order := frame.Snap.Order
	end := min(m.Offset+m.Height, len(order))
	var rows [][]string
	for _, id := range order[m.Offset:end] {
		c := frame.Snap.Scatter[id]
		rows = append(rows, []string{
			id,
			labels[id],
			fmt.Sprintf("%.0f", c.X),
			fmt.Sprintf("%.0f", c.Y),
			fmt.Sprintf("%.0f", c.Size),
			frame.State[id],
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "X", "Y", "Size", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(rows) {
				return lipgloss.NewStyle()
			}
			switch rows[row][5] {
			case rowNew:
				return replayNewStyle
			case rowMoved:
				return replayMovedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(replayDimStyle.Render(fmt.Sprintf("  topics %d-%d of %d", m.Offset+1, end, len(order))))
	return b.String()
}

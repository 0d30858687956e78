package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SampleListModel - Interactive sample selection
// =============================================================================

// SampleListModel is the bubbletea model for interactive sample
// selection.
type SampleListModel struct {
	Samples  []Sample
	Cursor   int
	Selected *Sample
	Height   int
	Offset   int
}

// NewSampleListModel creates a new sample list model.
func NewSampleListModel(samples []Sample) SampleListModel {
	return SampleListModel{
		Samples: samples,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m SampleListModel) Init() tea.Cmd {
	return nil
}

func (m SampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Samples)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			sample := m.Samples[m.Cursor]
			m.Selected = &sample
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SampleListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Sample"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Samples) {
		end = len(m.Samples)
	}

	for i := m.Offset; i < end; i++ {
		s := m.Samples[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-14s %-40s %s", cursor, s.Name, s.Notation, listDimStyle.Render(s.About))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Samples))))

	return b.String()
}

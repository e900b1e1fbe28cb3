package entry

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

// Model asks for a movie identifier and opens the detail screen for it.
type Model struct {
	input  textinput.Model
	err    string
	width  int
	height int
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "TMDB movie id, e.g. 27205"
	ti.CharLimit = 20
	ti.Width = 30
	ti.Focus()

	return Model{
		input:  ti,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			id := strings.TrimSpace(m.input.Value())
			if !validID(id) {
				m.err = "Enter a numeric movie id."
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return shared.MsgOpenMovie{MovieID: id} }
		case "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Reset clears the field for the next identifier.
func (m *Model) Reset() {
	m.input.Reset()
	m.err = ""
}

func (m Model) View() string {
	lines := []string{
		shared.StyleTitle.Render("🎬 Movie detail"),
		"",
		m.input.View(),
	}
	if m.err != "" {
		lines = append(lines, "", shared.StyleError.Render(m.err))
	}
	lines = append(lines, "", shared.StyleDim.Render("[Enter] Open • [Esc] Quit"))

	box := shared.StyleBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

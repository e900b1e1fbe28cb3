package entry

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEnter_OpensMovie(t *testing.T) {
	m := typeText(NewModel(), "27205")
	assert.Equal(t, "27205", m.input.Value())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, shared.MsgOpenMovie{MovieID: "27205"}, cmd())
}

func TestEnter_RejectsNonNumeric(t *testing.T) {
	m := typeText(NewModel(), "abc")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "Enter a numeric movie id.")

	m.Reset()
	assert.Empty(t, m.input.Value())
	assert.NotContains(t, ansi.Strip(m.View()), "numeric")
}

func TestEnter_RejectsEmpty(t *testing.T) {
	_, cmd := NewModel().Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

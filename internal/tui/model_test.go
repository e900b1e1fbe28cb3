package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/movie-detail/internal/movie"
	"github.com/Waddenn/movie-detail/internal/tui/detail"
	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubFetcher) MovieDetail(ctx context.Context, id string) (*movie.Detail, error) {
	s.mu.Lock()
	s.calls = append(s.calls, id)
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &movie.Detail{Title: "Movie " + id, PosterPath: "/p.jpg", VoteAverage: 7, ReleaseDate: "2001-02-03"}, nil
}

// drain runs cmd and feeds every resulting message back into m, skipping
// ticks that would otherwise loop forever.
func drain(m *MainModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(m, c)
		}
	case detail.MsgDetailLoaded, shared.MsgOpenMovie, shared.MsgBack:
		_, next := m.Update(msg)
		drain(m, next)
	}
}

func TestInitialID_ActivatesDetail(t *testing.T) {
	f := &stubFetcher{}
	m := NewModel(f, detail.Options{}, "42")
	assert.Equal(t, shared.ViewDetail, m.CurrentView())

	drain(m, m.Init())
	assert.Equal(t, []string{"42"}, f.calls)
	require.IsType(t, detail.Loaded{}, m.Detail().State())
	assert.Contains(t, ansi.Strip(m.View()), "Movie 42")
}

func TestEntryToDetailAndBack(t *testing.T) {
	f := &stubFetcher{}
	m := NewModel(f, detail.Options{}, "")
	assert.Equal(t, shared.ViewEntry, m.CurrentView())

	for _, r := range "7" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(m, cmd)

	assert.Equal(t, shared.ViewDetail, m.CurrentView())
	assert.Equal(t, []string{"7"}, f.calls)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(m, cmd)
	assert.Equal(t, shared.ViewEntry, m.CurrentView())
}

func TestBackWhileLoading_DropsLateResult(t *testing.T) {
	f := &stubFetcher{}
	m := NewModel(f, detail.Options{}, "")

	_, load := m.Update(shared.MsgOpenMovie{MovieID: "9"})
	m.Update(shared.MsgBack{})
	assert.Equal(t, shared.ViewEntry, m.CurrentView())

	drain(m, load)
	assert.IsType(t, detail.Loading{}, m.Detail().State())
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(&stubFetcher{}, detail.Options{}, "42")
	drain(m, m.Init())

	// q closes the overlay first.
	m.Detail().ToggleModal()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.False(t, m.Detail().ModalOpen())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeReachesDetail(t *testing.T) {
	m := NewModel(&stubFetcher{}, detail.Options{}, "42")
	drain(m, m.Init())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 50, lipgloss.Height(m.View()))
}

package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/movie-detail/internal/tui/detail"
	"github.com/Waddenn/movie-detail/internal/tui/entry"
	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

type MainModel struct {
	log *slog.Logger

	width  int
	height int

	currentView shared.View
	initialID   string

	// Sub-models
	entry  entry.Model
	detail *detail.Model
}

// NewModel builds the application. With a non-empty movieID the detail
// screen is activated right away; otherwise the user is asked for an id.
func NewModel(f detail.Fetcher, opts detail.Options, movieID string) *MainModel {
	m := &MainModel{
		log:         opts.Logger,
		currentView: shared.ViewEntry,
		initialID:   movieID,
		entry:       entry.NewModel(),
		detail:      detail.NewModel(f, opts),
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	if movieID != "" {
		m.currentView = shared.ViewDetail
	}
	return m
}

func (m *MainModel) Init() tea.Cmd {
	if m.currentView == shared.ViewDetail {
		return m.detail.SetMovie(m.initialID)
	}
	return m.entry.Init()
}

func (m *MainModel) CurrentView() shared.View { return m.currentView }

func (m *MainModel) Detail() *detail.Model { return m.detail }

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keys
		switch msg.String() {
		case "ctrl+c":
			m.detail.Close()
			return m, tea.Quit
		case "q":
			if m.currentView == shared.ViewDetail && !m.detail.ModalOpen() {
				m.detail.Close()
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Propagate window size to ALL submodels
		m.entry, _ = m.entry.Update(msg)
		return m, m.detail.Update(msg)

	case shared.MsgOpenMovie:
		m.currentView = shared.ViewDetail
		m.log.Debug("open movie", "movie_id", msg.MovieID)
		return m, m.detail.SetMovie(msg.MovieID)

	case shared.MsgBack:
		if m.currentView == shared.ViewDetail {
			m.detail.Close()
			m.entry.Reset()
			m.currentView = shared.ViewEntry
			return m, m.entry.Init()
		}
		return m, nil

	case detail.MsgDetailLoaded, detail.MsgRetryTick:
		// Routed regardless of the active view so late results can be dropped.
		return m, m.detail.Update(msg)

	}

	// Update active submodel
	var cmd tea.Cmd
	switch m.currentView {
	case shared.ViewEntry:
		m.entry, cmd = m.entry.Update(msg)
	case shared.ViewDetail:
		cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m *MainModel) View() string {
	switch m.currentView {
	case shared.ViewEntry:
		return m.entry.View()
	case shared.ViewDetail:
		return m.detail.View()
	}
	return "Unknown View"
}

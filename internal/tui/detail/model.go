package detail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/movie-detail/internal/config"
	"github.com/Waddenn/movie-detail/internal/logging"
	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

// Options configures the detail screen. Zero values fall back to defaults.
type Options struct {
	ImageBaseURL     string
	ImageHeightRatio float64
	MaxStars         int
	Timeout          time.Duration
	AutoRetrySeconds int
	Logger           *slog.Logger
}

// OptionsFromConfig maps the application config onto Options.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	return Options{
		ImageBaseURL:     cfg.TMDB.ImageBaseURL,
		ImageHeightRatio: cfg.Layout.ImageHeightRatio,
		MaxStars:         cfg.Layout.MaxStars,
		Timeout:          cfg.TMDB.Timeout.Duration,
		AutoRetrySeconds: cfg.Loader.AutoRetrySeconds,
		Logger:           logger,
	}
}

func (o Options) withDefaults() Options {
	d := config.Default()
	if o.ImageBaseURL == "" {
		o.ImageBaseURL = d.TMDB.ImageBaseURL
	}
	if o.ImageHeightRatio <= 0 || o.ImageHeightRatio > 1 {
		o.ImageHeightRatio = d.Layout.ImageHeightRatio
	}
	if o.MaxStars < 1 {
		o.MaxStars = d.Layout.MaxStars
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// Model is the movie detail screen: it loads one movie, renders it and owns
// the video overlay.
type Model struct {
	fetcher Fetcher
	opts    Options
	log     *slog.Logger

	movieID   string
	state     ViewState
	modalOpen bool

	requestID string
	cancel    context.CancelFunc
	fetches   int
	countdown *Countdown

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
}

func NewModel(f Fetcher, opts Options) *Model {
	opts = opts.withDefaults()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = shared.StyleStars

	return &Model{
		fetcher:  f,
		opts:     opts,
		log:      opts.Logger,
		state:    Loading{},
		spinner:  sp,
		viewport: viewport.New(80, 21),
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    80, // Sensible defaults
		height:   24,
	}
}

// SetMovie activates the screen for id. A fetch is issued once per identifier
// change; asking again for the current id only re-fetches after a failure.
func (m *Model) SetMovie(id string) tea.Cmd {
	id = strings.TrimSpace(id)
	if id == m.movieID && m.requestID != "" {
		if _, failed := m.state.(Failed); !failed {
			return nil
		}
	}
	m.movieID = id
	m.modalOpen = false
	return m.load()
}

// Retry re-issues the fetch for the current movie after a failure.
func (m *Model) Retry() tea.Cmd {
	if _, failed := m.state.(Failed); !failed {
		return nil
	}
	return m.load()
}

// Close cancels any fetch in flight. Late results are ignored.
func (m *Model) Close() {
	m.cancelInFlight()
	m.countdown = nil
	m.requestID = ""
}

func (m *Model) MovieID() string { return m.movieID }
func (m *Model) State() ViewState { return m.state }
func (m *Model) ModalOpen() bool { return m.modalOpen }
func (m *Model) Fetches() int { return m.fetches }
func (m *Model) Countdown() *Countdown { return m.countdown }

// ToggleModal flips the video overlay. It only opens once a movie is loaded.
func (m *Model) ToggleModal() {
	if m.modalOpen {
		m.modalOpen = false
		return
	}
	if _, loaded := m.state.(Loaded); loaded {
		m.modalOpen = true
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return nil

	case MsgDetailLoaded:
		return m.handleLoaded(msg)

	case MsgRetryTick:
		return m.handleRetryTick(msg)

	case spinner.TickMsg:
		if _, loading := m.state.(Loading); !loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.MouseMsg:
		if m.modalOpen {
			if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
				m.modalOpen = false
			}
			return nil
		}
		if _, loaded := m.state.(Loaded); loaded {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Any key inside the overlay dismisses it.
	if m.modalOpen {
		m.modalOpen = false
		return nil
	}

	if key.Matches(msg, m.keys.Back) {
		return func() tea.Msg { return shared.MsgBack{} }
	}

	switch m.state.(type) {
	case Failed:
		if key.Matches(msg, m.keys.Retry) {
			return m.Retry()
		}
		if m.countdown != nil {
			m.log.Info("auto retry cancelled", "movie_id", m.movieID)
			m.countdown = nil
		}

	case Loaded:
		if key.Matches(msg, m.keys.Play) {
			m.ToggleModal()
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) resize() {
	footerHeight := 1
	m.viewport.Width = shared.ClampMin(m.width, 20)
	headerHeight := lipgloss.Height(shared.RenderHeader(" ", m.viewport.Width))
	m.viewport.Height = shared.ClampMin(m.height-headerHeight-footerHeight, 1)
	m.help.Width = m.viewport.Width
	m.refreshContent()
}

func (m *Model) refreshContent() {
	loaded, ok := m.state.(Loaded)
	if !ok {
		return
	}
	m.viewport.SetContent(RenderDetail(loaded.Movie, m.opts, m.viewport.Width, m.height))
}

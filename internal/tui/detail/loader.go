package detail

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Waddenn/movie-detail/internal/movie"
	"github.com/Waddenn/movie-detail/internal/tmdb"
)

// Fetcher is the detail-fetch operation. *tmdb.Client satisfies it.
type Fetcher interface {
	MovieDetail(ctx context.Context, id string) (*movie.Detail, error)
}

var errEmptyResponse = errors.New("empty response")

// fetchDetail runs one fetch and reports it as MsgDetailLoaded.
func fetchDetail(ctx context.Context, cancel context.CancelFunc, f Fetcher, movieID, requestID string) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		d, err := f.MovieDetail(ctx, movieID)
		if err == nil && d == nil {
			err = errEmptyResponse
		}
		return MsgDetailLoaded{MovieID: movieID, RequestID: requestID, Movie: d, Err: err}
	}
}

// load starts a fetch for the current movie id. Any fetch still in flight is
// cancelled and its result will be ignored.
func (m *Model) load() tea.Cmd {
	m.cancelInFlight()
	m.countdown = nil
	m.state = Loading{}

	requestID := uuid.NewString()
	m.requestID = requestID

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if m.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), m.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	ctx = tmdb.WithRequestID(ctx, requestID)
	m.cancel = cancel
	m.fetches++

	m.log.Info("fetch started", "movie_id", m.movieID, "request_id", requestID, "attempt", m.fetches)
	return tea.Batch(
		fetchDetail(ctx, cancel, m.fetcher, m.movieID, requestID),
		m.spinner.Tick,
	)
}

func (m *Model) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) handleLoaded(msg MsgDetailLoaded) tea.Cmd {
	if msg.RequestID != m.requestID {
		m.log.Debug("stale response dropped", "movie_id", msg.MovieID, "request_id", msg.RequestID, "current_request_id", m.requestID)
		return nil
	}
	m.cancel = nil

	if msg.Err != nil {
		m.state = Failed{Err: msg.Err}
		m.log.Warn("fetch failed", "movie_id", msg.MovieID, "request_id", msg.RequestID, "err", msg.Err)
		return m.startCountdown()
	}

	m.state = Loaded{Movie: *msg.Movie}
	m.log.Info("fetch finished", "movie_id", msg.MovieID, "request_id", msg.RequestID, "title", msg.Movie.Title)
	m.refreshContent()
	m.viewport.GotoTop()
	return nil
}

func (m *Model) startCountdown() tea.Cmd {
	if m.opts.AutoRetrySeconds <= 0 {
		return nil
	}
	m.countdown = &Countdown{SecondsRemaining: m.opts.AutoRetrySeconds, RequestID: m.requestID}
	return m.countdown.Init()
}

func (m *Model) handleRetryTick(msg MsgRetryTick) tea.Cmd {
	if m.countdown == nil || m.countdown.RequestID != msg.RequestID {
		return nil
	}
	if m.countdown.Tick() {
		m.log.Info("auto retry", "movie_id", m.movieID)
		return m.load()
	}
	return m.countdown.Init()
}

package detail

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/movie-detail/internal/movie"
	"github.com/Waddenn/movie-detail/internal/tmdb"
	"github.com/Waddenn/movie-detail/internal/tui/shared"
)

const (
	PlayLabel  = "▶ Play"
	VideoLabel = "VIDEO HERE"

	starFull  = "★"
	starHalf  = "½"
	starEmpty = "☆"
)

func (m *Model) View() string {
	m.keys.syncEnabled(m.state)

	switch s := m.state.(type) {
	case Loading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View())

	case Failed:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderFailed(s.Err))

	case Loaded:
		if m.modalOpen {
			return renderModal(m.width, m.height)
		}
		header := shared.RenderHeader("🎬 "+s.Movie.Title, m.viewport.Width)
		footer := shared.RenderFooter(fmt.Sprintf("TMDB #%s", m.movieID), m.help.View(m.keys), m.viewport.Width)
		return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
	}
	return "Unknown state"
}

func (m *Model) renderFailed(err error) string {
	width := shared.ClampMin(m.width-8, 20)
	lines := []string{
		shared.StyleError.Render(fmt.Sprintf("Could not load movie %s", m.movieID)),
		"",
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(ErrorReason(err)),
		"",
	}
	if m.countdown != nil {
		lines = append(lines, shared.StyleSecondary.Render(m.countdown.View()))
	}
	lines = append(lines, m.help.View(m.keys))
	return shared.StyleBorder.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// ErrorReason turns a fetch error into a line for the user.
func ErrorReason(err error) string {
	var apiErr *tmdb.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, tmdb.ErrNotFound):
		return "Movie not found."
	case errors.Is(err, tmdb.ErrInvalidID):
		return "Invalid movie id."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return fmt.Sprintf("Server error %d: %s", apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Sprintf("Server error %d.", apiErr.StatusCode)
	}
	return err.Error()
}

func renderModal(width, height int) string {
	w := shared.ClampMin(width-2, 1)
	h := shared.ClampMin(height-2, 1)
	box := shared.StyleModal.Width(w).Height(h).Render(VideoLabel)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// RenderDetail lays out a loaded movie for the given width. screenHeight sizes
// the backdrop block.
func RenderDetail(d movie.Detail, opts Options, width, screenHeight int) string {
	opts = opts.withDefaults()
	width = shared.ClampMin(width, 20)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	sections := []string{
		renderBackdrop(movie.ImageSource(d, opts.ImageBaseURL), width, shared.FractionOf(screenHeight, opts.ImageHeightRatio, 3)),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, shared.StylePlayButton.Render(PlayLabel)),
		center.Render(shared.StyleTitle.Render(d.Title)),
	}

	if chips, ok := movie.GenreChips(d); ok {
		sections = append(sections, center.MarginTop(1).MarginBottom(1).Render(renderGenres(chips)))
	}

	sections = append(sections,
		center.Render(RenderStars(movie.Rating(d, opts.MaxStars))),
		shared.StyleOverview.Width(width).Render(d.Overview),
		center.Render(shared.StyleRelease.Render("Release date: "+movie.FormatReleaseDate(d.ReleaseDate))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBackdrop(img movie.Image, width, height int) string {
	label := img.String()
	if img.Placeholder {
		label = "🎞  " + label
	}
	return shared.StyleBackdrop.
		Width(width).
		Height(height).
		Render(shared.Truncate(label, width-2))
}

func renderGenres(chips []string) string {
	rendered := make([]string, 0, len(chips))
	for _, c := range chips {
		rendered = append(rendered, shared.StyleGenre.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderStars draws a read-only rating such as "★★★★☆ 4.4/5". The value is
// rounded half away from zero to one decimal before drawing, so the glyphs
// and the number agree.
func RenderStars(r movie.StarRating) string {
	r.Value = math.Round(r.Value*10) / 10
	full, half, empty := r.Counts()
	stars := strings.Repeat(starFull, full) + strings.Repeat(starHalf, half) + strings.Repeat(starEmpty, empty)
	return shared.StyleStars.Render(stars) + " " + strconv.FormatFloat(r.Value, 'f', 1, 64) + "/" + strconv.Itoa(r.Max)
}

package shared

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorGold      = lipgloss.Color("#f5c518")
	ColorDarkGrey  = lipgloss.Color("#282a2e")
	ColorBlack     = lipgloss.Color("#1a1a1a")
	ColorWhite     = lipgloss.Color("#ffffff")
	ColorLightGrey = lipgloss.Color("#b2b2b2")
	ColorRed       = lipgloss.Color("#e52d27")

	// Styles
	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			MarginTop(1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorDarkGrey)

	StyleFooter = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Padding(0, 1)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGold).
			Padding(1, 2)

	StyleBackdrop = lipgloss.NewStyle().
			Background(ColorDarkGrey).
			Foreground(ColorLightGrey).
			Align(lipgloss.Center, lipgloss.Center)

	StylePlayButton = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleGenre = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Faint(true).
			Margin(0, 1)

	StyleStars = lipgloss.NewStyle().
			Foreground(ColorGold)

	StyleOverview = lipgloss.NewStyle().
			Padding(1)

	StyleRelease = lipgloss.NewStyle().
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	StyleSecondary = lipgloss.NewStyle().
			Foreground(ColorLightGrey)

	StyleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGold).
			Align(lipgloss.Center, lipgloss.Center)
)

// View represents the current active view
type View int

const (
	ViewEntry View = iota
	ViewDetail
)

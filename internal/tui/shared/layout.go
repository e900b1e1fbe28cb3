package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ClampMin returns min if value is lower, otherwise value.
func ClampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

// FractionOf returns ratio*total rounded down, never below min.
func FractionOf(total int, ratio float64, min int) int {
	return ClampMin(int(float64(total)*ratio), min)
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// RenderHeader renders a one-line title bar with a bottom rule.
func RenderHeader(content string, width int) string {
	return StyleHeader.Width(width).Render(Truncate(content, ClampMin(width-2, 1)))
}

// RenderFooter renders a single-line footer with optional left and right content.
// When right is provided, it is right-aligned within the available width.
func RenderFooter(left, right string, width int) string {
	safeWidth := ClampMin(width, 20)
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	if left != "" && right != "" {
		availableLeft := safeWidth - lipgloss.Width(right) - 4
		if availableLeft < 1 {
			// Not enough room for left; prioritize right.
			left = ""
		} else if lipgloss.Width(left) > availableLeft {
			left = Truncate(left, availableLeft)
		}
	}

	content := left
	if right != "" {
		right = Truncate(right, safeWidth-2)
		space := safeWidth - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if space > 0 {
			content = left + strings.Repeat(" ", space) + right
		} else {
			content = left + right
		}
	}

	return StyleFooter.Width(safeWidth).MaxHeight(1).Render(content)
}

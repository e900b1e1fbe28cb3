package shared

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFractionOf(t *testing.T) {
	assert.Equal(t, 19, FractionOf(60, 0.33, 3))
	assert.Equal(t, 3, FractionOf(5, 0.33, 3))
	assert.Equal(t, 40, FractionOf(40, 1, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	got := Truncate("a much longer line", 6)
	assert.Equal(t, 6, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Empty(t, Truncate("x", 0))
}

func TestRenderFooter_SingleLineAndAligned(t *testing.T) {
	out := ansi.Strip(RenderFooter("left", "[q] quit", 40))
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "left"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " "), "[q] quit"))
}

func TestRenderFooter_DropsLeftWhenCramped(t *testing.T) {
	out := ansi.Strip(RenderFooter("status text", strings.Repeat("k", 30), 20))
	assert.NotContains(t, out, "status")
	assert.Equal(t, 1, lipgloss.Height(out))
}

func TestRenderHeader_TitleAndRule(t *testing.T) {
	out := ansi.Strip(RenderHeader("Inception", 30))
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.Contains(t, out, "Inception")

	long := ansi.Strip(RenderHeader(strings.Repeat("x", 80), 30))
	assert.Equal(t, 30, lipgloss.Width(long))
	assert.Contains(t, long, "…")
}

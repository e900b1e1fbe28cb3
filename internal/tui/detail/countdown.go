package detail

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is overridden in tests.
var tickInterval = time.Second

// Countdown drives the auto-retry after a failed fetch.
type Countdown struct {
	SecondsRemaining int
	RequestID        string
}

func (c *Countdown) Init() tea.Cmd {
	id := c.RequestID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return MsgRetryTick{RequestID: id}
	})
}

// Tick consumes one second and reports whether the countdown has run out.
func (c *Countdown) Tick() bool {
	if c.SecondsRemaining > 0 {
		c.SecondsRemaining--
	}
	return c.SecondsRemaining == 0
}

func (c Countdown) View() string {
	return fmt.Sprintf("Retrying in %d seconds...", c.SecondsRemaining)
}

package detail

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play   key.Binding
	Retry  key.Binding
	Back   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "enter", " "),
			key.WithHelp("p", "play"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		// Scrolling itself is handled by the viewport keymap.
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Retry, k.Scroll, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// syncEnabled shows only the bindings that do something in state.
func (k *keyMap) syncEnabled(state ViewState) {
	_, loaded := state.(Loaded)
	_, failed := state.(Failed)
	k.Play.SetEnabled(loaded)
	k.Scroll.SetEnabled(loaded)
	k.Retry.SetEnabled(failed)
}

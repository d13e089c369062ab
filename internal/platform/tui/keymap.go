package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

// KeyMap defines the key bindings. Bindings that do nothing in the current
// phase are disabled, which also hides them from the help footer.
type KeyMap struct {
	Activate key.Binding
	Start    key.Binding
	Restart  key.Binding
	Menu     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns default key bindings, enabled for the title screen.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "thrust"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "b", "esc"),
			key.WithHelp("m/esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.SetPhase(rocket.PhaseIdle)
	return km
}

// SetPhase enables the bindings that apply to the given phase.
func (k *KeyMap) SetPhase(p rocket.Phase) {
	k.Activate.SetEnabled(p == rocket.PhasePlaying)
	k.Start.SetEnabled(p == rocket.PhaseIdle)
	k.Restart.SetEnabled(p == rocket.PhaseGameOver)
	k.Menu.SetEnabled(p == rocket.PhaseGameOver)
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Activate):
		return core.ActionActivate
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Menu):
		return core.ActionMenu
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Start, k.Restart, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.Start, k.Restart},
		{k.Menu, k.Quit},
	}
}

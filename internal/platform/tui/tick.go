// Package tui runs the game in a terminal with Bubble Tea. It owns the
// tick schedule, maps keys and clicks to actions and renders frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick. Gen identifies the tick chain that
// produced it; ticks from an older chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Package tui runs flappy sessions in a terminal with Bubble Tea, locally or
// over SSH. It maps keys and mouse presses to jumps, paces frames with ticks,
// and projects the world onto a cell grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to simulate one frame of session gen.
type TickMsg struct {
	gen int
	at  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at tickRate frames per second.
func tickCmd(gen, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{gen: gen, at: t}
	})
}

// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and the frame clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a tick rate to the frame duration. Non-positive rates
// fall back to one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

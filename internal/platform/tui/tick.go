// Package tui runs Streamline in the terminal with Bubble Tea. It maps
// keys to game actions, paces the game with ticks and draws its screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance timed effects such as the cleared banner.
type TickMsg time.Time

// tickCmd returns a command that sends a tick after one interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

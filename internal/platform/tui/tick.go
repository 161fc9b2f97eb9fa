// Package tui provides the Bubble Tea integration for the runner.
// It owns the frame loop, input mapping, and drawing; all game state
// lives in the sim package and is only read here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame: one simulation update plus a redraw.
type TickMsg time.Time

// maxFrameDelta caps the per-frame elapsed time fed to the simulation.
// Large deltas after terminal suspension would otherwise cause huge
// catch-up jumps in a single step.
const maxFrameDelta = 0.033

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

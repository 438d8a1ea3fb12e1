// Package tui runs numberpop in a terminal with Bubble Tea. The terminal is
// the host: its tick loop is the animation signal, mouse presses are pointer
// events and the cell grid is the canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per presented host frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

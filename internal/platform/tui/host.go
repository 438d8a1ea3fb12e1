package tui

import (
	"time"

	"github.com/vovakirdan/numberpop/internal/loop"
)

// Host implements loop.Host for a Bubble Tea program. Callbacks run inside
// Model.Update, so they never overlap.
type Host struct {
	start    time.Time
	frames   []loop.FrameFunc
	pointers []loop.PointerFunc
}

// NewHost creates a host whose frame timestamps count from start.
func NewHost(start time.Time) *Host {
	return &Host{start: start}
}

// RequestAnimationFrame queues fn for the next presented frame.
func (h *Host) RequestAnimationFrame(fn loop.FrameFunc) error {
	h.frames = append(h.frames, fn)
	return nil
}

// AddPointerDownListener registers fn for every pointer press on the canvas.
func (h *Host) AddPointerDownListener(fn loop.PointerFunc) error {
	h.pointers = append(h.pointers, fn)
	return nil
}

// Present runs the callbacks queued before this frame. Callbacks queued
// while presenting wait for the next frame.
func (h *Host) Present(now time.Time) {
	pending := h.frames
	h.frames = nil
	ts := float64(now.Sub(h.start)) / float64(time.Millisecond)
	for _, fn := range pending {
		fn(ts)
	}
}

// PointerDown delivers a press at viewport cell (x, y).
func (h *Host) PointerDown(x, y int) {
	for _, fn := range h.pointers {
		fn(x, y)
	}
}

// Pending returns the number of queued frame callbacks.
func (h *Host) Pending() int {
	return len(h.frames)
}

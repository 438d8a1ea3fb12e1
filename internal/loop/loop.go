// Package loop bridges a host's animation and pointer signals into
// simulation ticks and clicks.
//
// The host owns the thread of control: every callback runs to completion on
// the host's event loop, so the simulation is never entered concurrently.
package loop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numberpop/internal/game"
)

var (
	// ErrFrameRegistration is returned when the host refuses an animation-frame callback.
	ErrFrameRegistration = errors.New("loop: cannot register animation frame")
	// ErrPointerRegistration is returned when the host refuses a pointer-down listener.
	ErrPointerRegistration = errors.New("loop: cannot register pointer listener")
)

// FrameFunc is called by the host once per presented frame.
// The timestamp is in milliseconds and is not used by the loop.
type FrameFunc func(timestamp float64)

// PointerFunc is called by the host on pointer down, in viewport coordinates.
type PointerFunc func(clientX, clientY int)

// Host delivers timing and input signals. RequestAnimationFrame is one-shot:
// the callback runs at most once, on the next presented frame.
type Host interface {
	RequestAnimationFrame(fn FrameFunc) error
	AddPointerDownListener(fn PointerFunc) error
}

// Element is the canvas element as laid out by the host.
type Element interface {
	OffsetLeft() int
	OffsetTop() int
	ClientWidth() int
	ClientHeight() int
}

// Sim is the simulation driven by the loop.
type Sim interface {
	OnAnimationFrame()
	SetClick(x, y int)
}

// GameLoop forwards throttled frames and rescaled clicks to a Sim.
type GameLoop struct {
	cfg      game.Config
	host     Host
	canvas   Element
	throttle *Throttle
	logger   *log.Logger
	sim      Sim
	stopped  bool
}

// New creates a loop. Nothing is registered until Start.
func New(cfg game.Config, host Host, canvas Element, logger *log.Logger) *GameLoop {
	if logger == nil {
		logger = log.Default()
	}
	return &GameLoop{
		cfg:      cfg,
		host:     host,
		canvas:   canvas,
		throttle: NewThrottle(cfg.FrameDivisor),
		logger:   logger,
	}
}

// Start registers for animation frames and pointer-down events. Either
// registration failing is a startup error. The loop runs until the host
// goes away; there is no way to cancel it.
func (l *GameLoop) Start(sim Sim) error {
	l.logger.Info("game loop started",
		"divisor", l.cfg.FrameDivisor,
		"canvas", fmt.Sprintf("%dx%d", l.cfg.BaseWidth, l.cfg.BaseHeight),
	)
	l.sim = sim

	if err := l.host.RequestAnimationFrame(l.onFrame); err != nil {
		return fmt.Errorf("%w: %w", ErrFrameRegistration, err)
	}
	if err := l.host.AddPointerDownListener(l.onPointerDown); err != nil {
		return fmt.Errorf("%w: %w", ErrPointerRegistration, err)
	}
	return nil
}

// Frames returns the number of host frames seen.
func (l *GameLoop) Frames() uint64 {
	return l.throttle.Frames()
}

// Stopped reports whether the host refused a frame re-registration.
func (l *GameLoop) Stopped() bool {
	return l.stopped
}

func (l *GameLoop) onFrame(_ float64) {
	if l.throttle.Frame() {
		l.sim.OnAnimationFrame()
	}
	if err := l.host.RequestAnimationFrame(l.onFrame); err != nil {
		l.stopped = true
		l.logger.Error("animation frame re-registration failed", "error", err, "frames", l.throttle.Frames())
	}
}

func (l *GameLoop) onPointerDown(clientX, clientY int) {
	x, y, ok := l.ToSim(clientX, clientY)
	if !ok {
		l.logger.Debug("pointer dropped, canvas has no size", "x", clientX, "y", clientY)
		return
	}
	l.sim.SetClick(x, y)
}

// ToSim converts viewport coordinates to canvas coordinates. It reports
// false while the canvas has no displayed size.
func (l *GameLoop) ToSim(clientX, clientY int) (x, y int, ok bool) {
	w, h := l.canvas.ClientWidth(), l.canvas.ClientHeight()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	x = (clientX - l.canvas.OffsetLeft()) * l.cfg.BaseWidth / w
	y = (clientY - l.canvas.OffsetTop()) * l.cfg.BaseHeight / h
	return x, y, true
}

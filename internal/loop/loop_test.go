package loop

import (
	"errors"
	"testing"

	"github.com/vovakirdan/numberpop/internal/game"
	"github.com/vovakirdan/numberpop/internal/logging"
)

// fakeHost queues frame callbacks the way a browser does.
type fakeHost struct {
	pending    []FrameFunc
	pointers   []PointerFunc
	frameErr   error
	pointerErr error
	requests   int
}

func (h *fakeHost) RequestAnimationFrame(fn FrameFunc) error {
	h.requests++
	if h.frameErr != nil {
		return h.frameErr
	}
	h.pending = append(h.pending, fn)
	return nil
}

func (h *fakeHost) AddPointerDownListener(fn PointerFunc) error {
	if h.pointerErr != nil {
		return h.pointerErr
	}
	h.pointers = append(h.pointers, fn)
	return nil
}

func (h *fakeHost) present(n int) {
	for i := 0; i < n; i++ {
		pending := h.pending
		h.pending = nil
		for _, fn := range pending {
			fn(float64(i) * 16.7)
		}
	}
}

func (h *fakeHost) pointerDown(x, y int) {
	for _, fn := range h.pointers {
		fn(x, y)
	}
}

type fakeElement struct {
	left, top, w, h int
}

func (e fakeElement) OffsetLeft() int   { return e.left }
func (e fakeElement) OffsetTop() int    { return e.top }
func (e fakeElement) ClientWidth() int  { return e.w }
func (e fakeElement) ClientHeight() int { return e.h }

type fakeSim struct {
	ticks  int
	clicks [][2]int
}

func (s *fakeSim) OnAnimationFrame() { s.ticks++ }
func (s *fakeSim) SetClick(x, y int) { s.clicks = append(s.clicks, [2]int{x, y}) }

func startLoop(t *testing.T, host *fakeHost, el Element) (*GameLoop, *fakeSim) {
	t.Helper()
	l := New(game.DefaultConfig(), host, el, logging.Discard())
	sim := &fakeSim{}
	if err := l.Start(sim); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return l, sim
}

func TestThrottleFiresEveryFifthFrame(t *testing.T) {
	th := NewThrottle(5)
	var fired []uint64
	for i := 0; i < 20; i++ {
		if th.Frame() {
			fired = append(fired, th.Frames())
		}
	}

	expected := []uint64{5, 10, 15, 20}
	if len(fired) != len(expected) {
		t.Fatalf("fired on frames %v, expected %v", fired, expected)
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("fired on frames %v, expected %v", fired, expected)
			break
		}
	}
}

func TestThrottleTickRate(t *testing.T) {
	if got := NewThrottle(5).TickRate(60); got != 12 {
		t.Errorf("TickRate(60) = %v, expected 12", got)
	}
	if got := NewThrottle(0).TickRate(60); got != 60 {
		t.Errorf("divisor below 1 should fire every frame, TickRate(60) = %v", got)
	}
}

func TestLoopTicksAtOneFifthOfFrames(t *testing.T) {
	host := &fakeHost{}
	l, sim := startLoop(t, host, fakeElement{w: 500, h: 600})

	host.present(4)
	if sim.ticks != 0 {
		t.Fatalf("expected no tick before the fifth frame, got %d", sim.ticks)
	}
	host.present(1)
	if sim.ticks != 1 {
		t.Fatalf("expected 1 tick after 5 frames, got %d", sim.ticks)
	}
	host.present(95)
	if sim.ticks != 20 {
		t.Errorf("expected 20 ticks after 100 frames, got %d", sim.ticks)
	}
	if l.Frames() != 100 {
		t.Errorf("Frames() = %d, expected 100", l.Frames())
	}
}

func TestLoopReRegistersEveryFrame(t *testing.T) {
	host := &fakeHost{}
	startLoop(t, host, fakeElement{w: 500, h: 600})

	host.present(7)

	// One request from Start plus one per presented frame.
	if host.requests != 8 {
		t.Errorf("expected 8 frame requests, got %d", host.requests)
	}
	if len(host.pending) != 1 {
		t.Errorf("expected exactly one pending callback, got %d", len(host.pending))
	}
}

func TestLoopStopsWhenReRegistrationFails(t *testing.T) {
	host := &fakeHost{}
	l, _ := startLoop(t, host, fakeElement{w: 500, h: 600})

	host.frameErr = errors.New("gone")
	host.present(1)

	if !l.Stopped() {
		t.Error("loop should report stopped after re-registration failure")
	}
	if len(host.pending) != 0 {
		t.Errorf("no callback should be pending, got %d", len(host.pending))
	}
}

func TestStartFailsOnFrameRegistration(t *testing.T) {
	host := &fakeHost{frameErr: errors.New("no rAF")}
	l := New(game.DefaultConfig(), host, fakeElement{w: 1, h: 1}, logging.Discard())

	err := l.Start(&fakeSim{})
	if !errors.Is(err, ErrFrameRegistration) {
		t.Errorf("expected ErrFrameRegistration, got %v", err)
	}
}

func TestStartFailsOnPointerRegistration(t *testing.T) {
	host := &fakeHost{pointerErr: errors.New("no listener")}
	l := New(game.DefaultConfig(), host, fakeElement{w: 1, h: 1}, logging.Discard())

	err := l.Start(&fakeSim{})
	if !errors.Is(err, ErrPointerRegistration) {
		t.Errorf("expected ErrPointerRegistration, got %v", err)
	}
}

func TestPointerDownIsRescaled(t *testing.T) {
	tests := []struct {
		name       string
		el         fakeElement
		cx, cy     int
		wantX, wantY int
	}{
		{"same size", fakeElement{w: 500, h: 600}, 150, 150, 150, 150},
		{"half size", fakeElement{w: 250, h: 300}, 75, 75, 150, 150},
		{"offset canvas", fakeElement{left: 10, top: 20, w: 500, h: 600}, 160, 170, 150, 150},
		{"terminal grid", fakeElement{w: 80, h: 23}, 40, 11, 250, 286},
		{"left of canvas", fakeElement{left: 10, w: 500, h: 600}, 0, 0, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host := &fakeHost{}
			_, sim := startLoop(t, host, tc.el)

			host.pointerDown(tc.cx, tc.cy)

			if len(sim.clicks) != 1 {
				t.Fatalf("expected 1 click, got %d", len(sim.clicks))
			}
			got := sim.clicks[0]
			if got[0] != tc.wantX || got[1] != tc.wantY {
				t.Errorf("click = (%d, %d), expected (%d, %d)", got[0], got[1], tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPointerDownDroppedWithoutSize(t *testing.T) {
	host := &fakeHost{}
	_, sim := startLoop(t, host, fakeElement{w: 0, h: 600})

	host.pointerDown(10, 10)

	if len(sim.clicks) != 0 {
		t.Errorf("click should be dropped while the canvas has no width, got %v", sim.clicks)
	}
}

func TestLoopDrivesRealGame(t *testing.T) {
	host := &fakeHost{}
	l := New(game.DefaultConfig(), host, fakeElement{w: 500, h: 600}, logging.Discard())
	g, err := game.New(game.DefaultConfig(), nopContext{}, 500, 600, newRand(1))
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	if err := l.Start(g); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	host.pointerDown(150, 150)
	host.present(5)

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1 after clicking the initial target", g.Score())
	}
}

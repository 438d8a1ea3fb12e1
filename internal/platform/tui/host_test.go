package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/numberpop/internal/loop"
)

func TestHostPresentIsOneShot(t *testing.T) {
	start := time.Now()
	h := NewHost(start)
	calls := 0
	var stamp float64
	if err := h.RequestAnimationFrame(func(ts float64) { calls++; stamp = ts }); err != nil {
		t.Fatal(err)
	}

	h.Present(start.Add(250 * time.Millisecond))
	h.Present(start.Add(500 * time.Millisecond))

	if calls != 1 {
		t.Errorf("callback ran %d times, expected once", calls)
	}
	if stamp != 250 {
		t.Errorf("timestamp = %v, expected 250ms", stamp)
	}
}

func TestHostRequeueWaitsForNextFrame(t *testing.T) {
	h := NewHost(time.Now())
	calls := 0
	var fn loop.FrameFunc
	fn = func(float64) {
		calls++
		//nolint:errcheck // Host never refuses
		h.RequestAnimationFrame(fn)
	}
	//nolint:errcheck // Host never refuses
	h.RequestAnimationFrame(fn)

	h.Present(time.Now())
	if calls != 1 || h.Pending() != 1 {
		t.Fatalf("calls = %d, pending = %d; expected 1 and 1", calls, h.Pending())
	}
	h.Present(time.Now())
	if calls != 2 {
		t.Errorf("calls = %d, expected 2", calls)
	}
}

func TestHostPointerDown(t *testing.T) {
	h := NewHost(time.Now())
	var got [][2]int
	//nolint:errcheck // Host never refuses
	h.AddPointerDownListener(func(x, y int) { got = append(got, [2]int{x, y}) })

	h.PointerDown(3, 4)
	h.PointerDown(5, 6)

	if len(got) != 2 || got[0] != [2]int{3, 4} || got[1] != [2]int{5, 6} {
		t.Errorf("pointer events = %v", got)
	}
}

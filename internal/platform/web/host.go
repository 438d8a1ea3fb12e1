//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/vovakirdan/numberpop/internal/loop"
)

// Host implements loop.Host on the browser window and a canvas element.
type Host struct {
	window js.Value
	canvas *Canvas
}

// NewHost creates a host that listens for presses on canvas.
func NewHost(canvas *Canvas) *Host {
	return &Host{window: js.Global(), canvas: canvas}
}

// RequestAnimationFrame schedules fn for the next browser frame. The
// wrapper releases itself after running once.
func (h *Host) RequestAnimationFrame(fn loop.FrameFunc) error {
	raf := h.window.Get("requestAnimationFrame")
	if raf.Type() != js.TypeFunction {
		return ErrNoAnimationFrame
	}

	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		cb.Release()
		ts := 0.0
		if len(args) > 0 {
			ts = args[0].Float()
		}
		fn(ts)
		return nil
	})
	h.window.Call("requestAnimationFrame", cb)
	return nil
}

// AddPointerDownListener registers fn for mousedown events on the canvas.
// The listener lives as long as the page.
func (h *Host) AddPointerDownListener(fn loop.PointerFunc) error {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		fn(ev.Get("clientX").Int(), ev.Get("clientY").Int())
		return nil
	})
	h.canvas.el.Call("addEventListener", "mousedown", cb)
	return nil
}

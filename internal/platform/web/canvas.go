//go:build js && wasm

package web

import (
	"errors"
	"fmt"
	"syscall/js"
)

var (
	// ErrNoDocument is returned when the global document is missing.
	ErrNoDocument = errors.New("web: no document")
	// ErrNoCanvas is returned when the canvas element cannot be found.
	ErrNoCanvas = errors.New("web: canvas not found")
	// ErrNoContext is returned when the canvas has no 2D context.
	ErrNoContext = errors.New("web: 2d context unavailable")
	// ErrNoAnimationFrame is returned when requestAnimationFrame is missing.
	ErrNoAnimationFrame = errors.New("web: requestAnimationFrame unavailable")
)

// Canvas is a DOM canvas element. It implements loop.Element.
type Canvas struct {
	el js.Value
}

// LookupCanvas finds the canvas element with the given id.
func LookupCanvas(id string) (*Canvas, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, ErrNoDocument
	}
	el := doc.Call("getElementById", id)
	if !el.Truthy() {
		return nil, fmt.Errorf("%w: #%s", ErrNoCanvas, id)
	}
	return &Canvas{el: el}, nil
}

// Context2D returns the element's 2D rendering context.
func (c *Canvas) Context2D() (*Context, error) {
	ctx := c.el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, ErrNoContext
	}
	return &Context{v: ctx}, nil
}

func (c *Canvas) OffsetLeft() int   { return c.el.Get("offsetLeft").Int() }
func (c *Canvas) OffsetTop() int    { return c.el.Get("offsetTop").Int() }
func (c *Canvas) ClientWidth() int  { return c.el.Get("clientWidth").Int() }
func (c *Canvas) ClientHeight() int { return c.el.Get("clientHeight").Int() }

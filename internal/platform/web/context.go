//go:build js && wasm

package web

import "syscall/js"

// Context wraps a CanvasRenderingContext2D. It implements game.Context2D.
type Context struct {
	v js.Value
}

func (c *Context) ClearRect(x, y, w, h float64) { c.v.Call("clearRect", x, y, w, h) }
func (c *Context) SetFillStyle(style string)    { c.v.Set("fillStyle", style) }
func (c *Context) SetGlobalAlpha(alpha float64) { c.v.Set("globalAlpha", alpha) }
func (c *Context) BeginPath()                   { c.v.Call("beginPath") }
func (c *Context) Rect(x, y, w, h float64)      { c.v.Call("rect", x, y, w, h) }
func (c *Context) ClosePath()                   { c.v.Call("closePath") }
func (c *Context) Fill()                        { c.v.Call("fill") }
func (c *Context) SetTextAlign(align string)    { c.v.Set("textAlign", align) }
func (c *Context) SetFont(font string)          { c.v.Set("font", font) }

func (c *Context) FillText(text string, x, y float64) {
	c.v.Call("fillText", text, x, y)
}

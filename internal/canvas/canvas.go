// Package canvas implements a 2D drawing context on top of a terminal cell
// screen. The logical drawing space is scaled onto the screen's cell grid,
// fills become cell backgrounds and text becomes glyphs.
package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/numberpop/internal/core"
)

type rect struct {
	x, y, w, h float64
}

// Canvas draws into a core.Screen. It also acts as the canvas element of the
// terminal host: its client size is the screen's cell grid.
type Canvas struct {
	screen     *core.Screen
	width      float64 // logical width
	height     float64 // logical height
	background colorful.Color
	fill       colorful.Color
	alpha      float64
	align      string
	font       string
	path       []rect
	offsetL    int
	offsetT    int
}

// New creates a canvas with a width x height logical space drawn into screen.
func New(screen *core.Screen, width, height int) *Canvas {
	return &Canvas{
		screen:     screen,
		width:      float64(width),
		height:     float64(height),
		background: colorful.Color{},
		fill:       colorful.Color{},
		alpha:      1.0,
		align:      "start",
		font:       "10px sans-serif",
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// SetOffset places the canvas within the terminal, in cells.
func (c *Canvas) SetOffset(left, top int) {
	c.offsetL = left
	c.offsetT = top
}

func (c *Canvas) OffsetLeft() int   { return c.offsetL }
func (c *Canvas) OffsetTop() int    { return c.offsetT }
func (c *Canvas) ClientWidth() int  { return c.screen.Width() }
func (c *Canvas) ClientHeight() int { return c.screen.Height() }

// Font returns the last font set. Terminals cannot size glyphs, so it has
// no effect on drawing.
func (c *Canvas) Font() string {
	return c.font
}

// ClearRect resets the covered cells to blanks.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.cells(rect{x, y, w, h}, func(cx, cy int) {
		c.screen.SetCell(cx, cy, core.Cell{Rune: ' '})
	})
}

// SetFillStyle sets the fill color. Unparseable styles are ignored, as a
// browser would.
func (c *Canvas) SetFillStyle(style string) {
	col, err := ParseColor(style)
	if err != nil {
		return
	}
	c.fill = col
}

// SetGlobalAlpha sets the opacity of later fills. Values outside [0, 1]
// are ignored.
func (c *Canvas) SetGlobalAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return
	}
	c.alpha = alpha
}

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.path = append(c.path, rect{x, y, w, h})
}

// ClosePath is a no-op: the path only holds closed rectangles.
func (c *Canvas) ClosePath() {}

// Fill blends the fill color over every cell covered by the current path.
// A cell covered by several rectangles of one path is blended once.
func (c *Canvas) Fill() {
	seen := make(map[int]bool)
	w := c.screen.Width()
	for _, r := range c.path {
		c.cells(r, func(cx, cy int) {
			key := cy*w + cx
			if seen[key] {
				return
			}
			seen[key] = true
			cell := c.screen.GetCell(cx, cy)
			cell.BG = toCore(c.blend(cell.BG))
			c.screen.SetCell(cx, cy, cell)
		})
	}
}

func (c *Canvas) SetTextAlign(align string) {
	c.align = align
}

func (c *Canvas) SetFont(font string) {
	c.font = font
}

// FillText draws text with its anchor at (x, y). The anchor is the left,
// center or right end of the text depending on the text align.
func (c *Canvas) FillText(text string, x, y float64) {
	runes := []rune(text)
	col, row := c.toCell(x, y)

	switch c.align {
	case "center":
		col -= len(runes) / 2
	case "right", "end":
		col -= len(runes)
	}

	for i, r := range runes {
		cx := col + i
		if !c.screen.InBounds(cx, row) {
			continue
		}
		cell := c.screen.GetCell(cx, row)
		cell.Rune = r
		cell.FG = toCore(c.blend(cell.BG))
		c.screen.SetCell(cx, row, cell)
	}
}

// blend mixes the fill color over under using the global alpha.
func (c *Canvas) blend(under core.Color) colorful.Color {
	base := c.background
	if !under.IsDefault() {
		base = fromCore(under)
	}
	return base.BlendRgb(c.fill, c.alpha).Clamped()
}

// toCell maps a logical point to the cell containing it.
func (c *Canvas) toCell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func (c *Canvas) scale() (float64, float64) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.width, float64(c.screen.Height()) / c.height
}

// cells calls fn for every on-screen cell touched by r.
func (c *Canvas) cells(r rect, fn func(cx, cy int)) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	sx, sy := c.scale()
	x0 := core.Max(int(math.Floor(r.x*sx)), 0)
	y0 := core.Max(int(math.Floor(r.y*sy)), 0)
	x1 := core.Min(int(math.Ceil((r.x+r.w)*sx)), c.screen.Width())
	y1 := core.Min(int(math.Ceil((r.y+r.h)*sy)), c.screen.Height())

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			fn(cx, cy)
		}
	}
}

func toCore(c colorful.Color) core.Color {
	r, g, b := c.RGB255()
	return core.RGB(r, g, b)
}

func fromCore(c core.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

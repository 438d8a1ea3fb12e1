package game

// Context2D is the subset of a canvas 2D rendering context the game draws with.
// Coordinates are in logical canvas units.
type Context2D interface {
	ClearRect(x, y, w, h float64)
	SetFillStyle(style string)
	SetGlobalAlpha(alpha float64)
	BeginPath()
	Rect(x, y, w, h float64)
	ClosePath()
	Fill()
	SetTextAlign(align string)
	SetFont(font string)
	FillText(text string, x, y float64)
}

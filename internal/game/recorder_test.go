package game

import "fmt"

// recorder is a Context2D that logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) ClearRect(x, y, w, h float64) { r.record("clearRect(%g,%g,%g,%g)", x, y, w, h) }
func (r *recorder) SetFillStyle(style string)    { r.record("fillStyle(%s)", style) }
func (r *recorder) SetGlobalAlpha(alpha float64) { r.record("globalAlpha(%g)", alpha) }
func (r *recorder) BeginPath()                   { r.record("beginPath") }
func (r *recorder) Rect(x, y, w, h float64)      { r.record("rect(%g,%g,%g,%g)", x, y, w, h) }
func (r *recorder) ClosePath()                   { r.record("closePath") }
func (r *recorder) Fill()                        { r.record("fill") }
func (r *recorder) SetTextAlign(align string)    { r.record("textAlign(%s)", align) }
func (r *recorder) SetFont(font string)          { r.record("font(%s)", font) }
func (r *recorder) FillText(text string, x, y float64) {
	r.record("fillText(%s,%g,%g)", text, x, y)
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

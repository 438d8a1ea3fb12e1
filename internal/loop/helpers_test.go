package loop

import "math/rand"

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// nopContext discards every draw call.
type nopContext struct{}

func (nopContext) ClearRect(_, _, _, _ float64)      {}
func (nopContext) SetFillStyle(string)               {}
func (nopContext) SetGlobalAlpha(float64)            {}
func (nopContext) BeginPath()                        {}
func (nopContext) Rect(_, _, _, _ float64)           {}
func (nopContext) ClosePath()                        {}
func (nopContext) Fill()                             {}
func (nopContext) SetTextAlign(string)               {}
func (nopContext) SetFont(string)                    {}
func (nopContext) FillText(string, float64, float64) {}

package game

import (
	"fmt"
	"strconv"
)

// TextColor is used for numerals and the HUD.
const TextColor = "rgb(0 255 255)"

const (
	targetAlpha = 0.5
	numeralFont = "60px, Arial"
	hudFont     = "150px, Arial"
	hudX, hudY  = 50, 50

	messageRunning = "Click Circle to reach 99"
	messageWon     = "Congratuation!!"
)

var targetColors = [...]string{
	"rgb(0 128 0)",
	"rgb(24 255 0)",
	"rgb(131 245 44)",
	"rgb(255 255 0)",
}

// ColorFor returns the fill style for a target color index.
// Unknown indices fall back to green.
func ColorFor(index int) string {
	if index < 0 || index >= len(targetColors) {
		return targetColors[0]
	}
	return targetColors[index]
}

// Clear erases the visible area. The cleared rectangle always covers the
// whole logical canvas, even when the viewport is smaller.
func (g *Game) Clear() {
	w := max(g.viewportW, g.cfg.BaseWidth)
	h := max(g.viewportH, g.cfg.BaseHeight)
	g.ctx.ClearRect(0, 0, float64(w), float64(h))
}

// Draw renders every target followed by the HUD line.
func (g *Game) Draw() {
	ctx := g.ctx
	for _, t := range g.targets {
		ctx.SetFillStyle(ColorFor(t.ColorIndex))
		ctx.SetGlobalAlpha(targetAlpha)
		ctx.BeginPath()
		ctx.Rect(float64(t.X), float64(t.Y), float64(t.W), float64(t.H))
		ctx.ClosePath()
		ctx.Fill()

		ctx.SetFillStyle(TextColor)
		ctx.SetGlobalAlpha(1.0)
		ctx.SetTextAlign("center")
		ctx.SetFont(numeralFont)
		ctx.FillText(strconv.Itoa(t.Value), float64(t.X+t.W/2), float64(t.Y+t.H/2))
	}

	ctx.SetFillStyle(TextColor)
	ctx.SetGlobalAlpha(1.0)
	ctx.SetTextAlign("left")
	ctx.SetFont(hudFont)
	ctx.FillText(g.HUD(), hudX, hudY)
}

// HUD returns the status line shown above the targets.
func (g *Game) HUD() string {
	message := messageRunning
	if !g.running {
		message = messageWon
	}
	return fmt.Sprintf("%d / %d  %s", g.score, g.cfg.Goal, message)
}

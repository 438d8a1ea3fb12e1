package game

import (
	"reflect"
	"testing"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "rgb(0 128 0)"},
		{1, "rgb(24 255 0)"},
		{2, "rgb(131 245 44)"},
		{3, "rgb(255 255 0)"},
		{4, "rgb(0 128 0)"},
		{-1, "rgb(0 128 0)"},
	}

	for _, tc := range tests {
		if got := ColorFor(tc.index); got != tc.expected {
			t.Errorf("ColorFor(%d) = %q, expected %q", tc.index, got, tc.expected)
		}
	}
}

func TestDrawCalls(t *testing.T) {
	g, rec := newTestGame(t, 1)
	g.targets = []Target{{X: 100, Y: 100, W: 100, H: 50, Value: 7, ColorIndex: 3}}

	g.Draw()

	expected := []string{
		"fillStyle(rgb(255 255 0))",
		"globalAlpha(0.5)",
		"beginPath",
		"rect(100,100,100,50)",
		"closePath",
		"fill",
		"fillStyle(rgb(0 255 255))",
		"globalAlpha(1)",
		"textAlign(center)",
		"font(60px, Arial)",
		"fillText(7,150,125)",
		"fillStyle(rgb(0 255 255))",
		"globalAlpha(1)",
		"textAlign(left)",
		"font(150px, Arial)",
		"fillText(0 / 99  Click Circle to reach 99,50,50)",
	}
	if !reflect.DeepEqual(rec.calls, expected) {
		t.Errorf("Draw() calls =\n%q\nexpected\n%q", rec.calls, expected)
	}
}

func TestHUDMessages(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.score = 42
	if got := g.HUD(); got != "42 / 99  Click Circle to reach 99" {
		t.Errorf("running HUD = %q", got)
	}

	g.score = 99
	g.running = false
	if got := g.HUD(); got != "99 / 99  Congratuation!!" {
		t.Errorf("won HUD = %q", got)
	}
}

func TestClearCoversViewportAndCanvas(t *testing.T) {
	tests := []struct {
		name     string
		vw, vh   int
		expected string
	}{
		{"viewport larger", 800, 900, "clearRect(0,0,800,900)"},
		{"viewport smaller", 80, 23, "clearRect(0,0,500,600)"},
		{"mixed", 1000, 20, "clearRect(0,0,1000,600)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, rec := newTestGame(t, 1)
			g.SetViewport(tc.vw, tc.vh)

			g.Clear()

			if len(rec.calls) != 1 || rec.calls[0] != tc.expected {
				t.Errorf("Clear() calls = %q, expected [%q]", rec.calls, tc.expected)
			}
		})
	}
}

func TestOnAnimationFrameClearsBeforeDrawing(t *testing.T) {
	g, rec := newTestGame(t, 1)

	g.OnAnimationFrame()

	if len(rec.calls) == 0 || rec.calls[0] != "clearRect(0,0,500,600)" {
		t.Fatalf("first call should clear the canvas, got %q", rec.calls)
	}
	last := rec.calls[len(rec.calls)-1]
	if last != "fillText(0 / 99  Click Circle to reach 99,50,50)" {
		t.Errorf("last call should draw the HUD, got %q", last)
	}
}

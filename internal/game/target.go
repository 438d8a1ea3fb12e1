package game

import (
	"math/rand"

	"github.com/vovakirdan/numberpop/internal/core"
)

// Direction is the horizontal movement of a target, fixed at spawn.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// Target is one numbered rectangle drifting across the canvas.
type Target struct {
	X, Y       int
	W, H       int
	Value      int
	ColorIndex int
	Direction  Direction
}

// Rect returns the target's bounds.
func (t Target) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.W, t.H)
}

// Hit reports whether the point lies within the target, edges included.
func (t Target) Hit(x, y int) bool {
	return t.Rect().ContainsClosed(x, y)
}

// Exited reports whether the target has left the canvas horizontally.
func (t Target) Exited(baseWidth int) bool {
	return t.X > baseWidth || t.X+t.W < 0
}

// Moved returns the target advanced by step in its direction.
// Any direction other than DirRight moves left.
func (t Target) Moved(step int) Target {
	if t.Direction == DirRight {
		t.X += step
	} else {
		t.X -= step
	}
	return t
}

// initialTarget is the target present when a game starts.
func initialTarget() Target {
	return Target{X: 100, Y: 100, W: 100, H: 100, Value: 1, ColorIndex: 0, Direction: DirRight}
}

// spawnTarget draws a new target. Fields are drawn in a fixed order so a
// seeded source always produces the same sequence.
func spawnTarget(rng *rand.Rand, cfg Config) Target {
	x := between(rng, cfg.SpawnMin, cfg.BaseWidth-cfg.SpawnMargin)
	y := between(rng, cfg.SpawnMin, cfg.BaseHeight-cfg.SpawnMargin)
	w := between(rng, cfg.MinSize, cfg.MaxSize)
	h := between(rng, cfg.MinSize, cfg.MaxSize)
	n := between(rng, 1, cfg.MaxSelectNumber)
	c := between(rng, 0, cfg.MaxColor)
	d := Direction(between(rng, 0, 2))
	return Target{X: x, Y: y, W: w, H: h, Value: n, ColorIndex: c, Direction: d}
}

// between returns a uniform value in [lo, hi).
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

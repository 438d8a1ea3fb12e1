// Package game implements the number-popping simulation: numbered rectangles
// drift across a fixed-size canvas and clicking them adds their value to the
// score until it reaches the goal exactly.
//
// A Game is not safe for concurrent use. Hosts call OnAnimationFrame and
// SetClick from a single thread of control.
package game

import (
	"fmt"
	"math/rand"
)

// Game owns all mutable game state.
type Game struct {
	cfg       Config
	ctx       Context2D
	rng       *rand.Rand
	targets   []Target
	viewportW int
	viewportH int
	clickX    int
	clickY    int
	score     int
	running   bool
}

// State is a snapshot of a Game.
type State struct {
	Targets   []Target
	CanvasW   int
	CanvasH   int
	ViewportW int
	ViewportH int
	ClickX    int
	ClickY    int
	Score     int
	Running   bool
}

// New creates a game drawing into ctx. The viewport is the displayed size of
// the canvas as reported by the host.
func New(cfg Config, ctx Context2D, viewportW, viewportH int, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, fmt.Errorf("game: nil drawing context")
	}
	if rng == nil {
		return nil, fmt.Errorf("game: nil random source")
	}

	targets := make([]Target, 0, cfg.MaxNumber)
	targets = append(targets, initialTarget())

	return &Game{
		cfg:       cfg,
		ctx:       ctx,
		rng:       rng,
		targets:   targets,
		viewportW: viewportW,
		viewportH: viewportH,
		running:   true,
	}, nil
}

// OnAnimationFrame runs one tick: the state advances only while the game is
// running, but the frame is always cleared and redrawn.
func (g *Game) OnAnimationFrame() {
	if g.running {
		g.Update()
	}
	g.Clear()
	g.Draw()
}

// SetClick records the last pointer-down position in canvas coordinates.
// It is checked against every target on each following update.
func (g *Game) SetClick(x, y int) {
	g.clickX = x
	g.clickY = y
}

// SetViewport updates the displayed size of the canvas.
func (g *Game) SetViewport(w, h int) {
	g.viewportW = w
	g.viewportH = h
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	gain := 0
	survivors := g.targets[:0]
	for _, t := range g.targets {
		if t.Exited(g.cfg.BaseWidth) {
			continue
		}
		if t.Hit(g.clickX, g.clickY) {
			gain += t.Value
			continue
		}
		survivors = append(survivors, t.Moved(g.cfg.IncreaseStep))
	}
	g.targets = survivors
	g.score += gain

	if len(g.targets) < g.cfg.MaxNumber {
		g.targets = append(g.targets, spawnTarget(g.rng, g.cfg))
	}

	if g.score == g.cfg.Goal {
		g.running = false
	}
	// Overshooting wraps the score instead of ending the game.
	if g.score > g.cfg.Goal {
		g.score -= g.cfg.Goal
	}
}

// Running reports whether the goal has not been reached yet.
func (g *Game) Running() bool {
	return g.running
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Config returns the constants the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	targets := make([]Target, len(g.targets))
	copy(targets, g.targets)
	return State{
		Targets:   targets,
		CanvasW:   g.cfg.BaseWidth,
		CanvasH:   g.cfg.BaseHeight,
		ViewportW: g.viewportW,
		ViewportH: g.viewportH,
		ClickX:    g.clickX,
		ClickY:    g.clickY,
		Score:     g.score,
		Running:   g.running,
	}
}

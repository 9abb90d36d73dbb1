// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nanoplatformer/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
//
// By default the delta time passed to scenes is the real time elapsed
// since the previous Update, so the simulation runs at wall-clock speed
// whatever the tick rate. SetDT switches to a fixed step.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	dt      float64
	fixedDT bool
	now     func() time.Time
	last    time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // First frame, before there is a previous tick
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.nextDT())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// nextDT measures the time since the previous tick, never negative
func (g *Game) nextDT() float64 {
	if g.fixedDT {
		return g.dt
	}
	now := g.now()
	dt := g.dt
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	if dt < 0 {
		dt = 0
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time used for updates.
// Useful for testing or replays.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
	g.fixedDT = true
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

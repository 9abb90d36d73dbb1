// Package scene defines the Scene interface for game screens.
//
// Each game screen (map selector, playing, map completed) implements
// the Scene interface to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nanoplatformer/internal/application/system"
)

// Scene represents a game screen (map selector, playing, map completed)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Router builds the scenes a scene can transition to. The argument of
// each method is the payload handed to the next scene.
type Router interface {
	// MapSelector returns the map list, showing message if not empty
	MapSelector(message string) Scene

	// Playing returns the scene that plays the named map
	Playing(mapName string) Scene

	// MapCompleted returns the summary screen for a finished run
	MapCompleted(result system.MapFinished) Scene
}

// Package selector provides the map selection scene.
package selector

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

var (
	colorTitle    = colornames.White
	colorItem     = color.RGBA{150, 150, 150, 255}
	colorSelected = colornames.Gold
	colorError    = colornames.Tomato
)

// Selector lists the map directories and starts the chosen one
type Selector struct {
	router  scene.Router
	maps    *config.MapSource
	message string

	names    []string
	selected int
}

// New creates a selector. message is shown under the list, typically the
// reason the last map failed to load.
func New(router scene.Router, maps *config.MapSource, message string) *Selector {
	return &Selector{
		router:  router,
		maps:    maps,
		message: message,
	}
}

// OnEnter reads the map list
func (s *Selector) OnEnter() {
	s.Refresh()
}

// OnExit is called when leaving this scene
func (s *Selector) OnExit() {}

// Refresh re-reads the map directory, keeping the selection in range
func (s *Selector) Refresh() {
	names, err := s.maps.ListMaps()
	if err != nil {
		log.Printf("Failed to list maps: %v", err)
		s.message = err.Error()
		names = nil
	}
	s.names = names
	if s.selected >= len(s.names) {
		s.selected = 0
	}
}

// Maps returns the listed map names
func (s *Selector) Maps() []string {
	return s.names
}

// Message returns the text shown under the list
func (s *Selector) Message() string {
	return s.message
}

// Move shifts the selection by delta, wrapping around
func (s *Selector) Move(delta int) {
	n := len(s.names)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+delta)%n + n) % n
}

// Selected returns the highlighted map name, "" if there are none
func (s *Selector) Selected() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[s.selected]
}

// Start returns the Playing scene for the highlighted map
func (s *Selector) Start() scene.Scene {
	name := s.Selected()
	if name == "" {
		return nil
	}
	return s.router.Playing(name)
}

// Update handles menu keys (implements scene.Scene)
func (s *Selector) Update(_ float64) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		s.Refresh()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return s.Start(), nil
	}
	return nil, nil
}

// Draw renders the map list
func (s *Selector) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx := float64(screen.Bounds().Dx()) / 2

	scene.DrawTextCentered(screen, "Select map", cx, 120, 6, colorTitle)

	if len(s.names) == 0 {
		scene.DrawTextCentered(screen, "No maps found in the maps folder :(", cx, 400, 3, colorItem)
	}
	for i, name := range s.names {
		c := colorItem
		label := name
		if i == s.selected {
			c = colorSelected
			label = fmt.Sprintf("> %s <", name)
		}
		scene.DrawTextCentered(screen, label, cx, 320+float64(i)*60, 3, c)
	}

	if s.message != "" {
		scene.DrawTextCentered(screen, s.message, cx, 900, 2, colorError)
	}
	scene.DrawTextCentered(screen, "Up/Down: choose   Enter: play   F5: refresh   Esc: quit", cx, 1000, 2, colorItem)
}

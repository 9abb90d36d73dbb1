package system

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/nanoplatformer/internal/domain/entity"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// testPalette maps layout characters to map colors
var testPalette = map[rune]color.NRGBA{
	'#': {255, 255, 255, 255},
	'X': {255, 0, 0, 255},
	'S': {255, 255, 0, 255},
	'P': {0, 255, 0, 255},
	'J': {0, 0, 255, 255},
	'D': {255, 0, 255, 255},
	'F': {0, 255, 255, 255},
	'C': {0, 127, 127, 255},
}

// createObjectImage draws a layout into an 80x45 object image.
// Row i of the layout is cell row i; any other character is empty.
func createObjectImage(rows ...string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, entity.GridWidth, entity.GridHeight))
	for y, row := range rows {
		for x, ch := range row {
			if c, ok := testPalette[ch]; ok {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func createTestRoom(t *testing.T, rows ...string) *entity.Room {
	t.Helper()
	room, err := DecodeRoom(0, config.RoomImages{Objects: createObjectImage(rows...)})
	require.NoError(t, err)
	return room
}

func createTestMap(t *testing.T, name string, layouts ...[]string) *entity.Map {
	t.Helper()
	m := &entity.Map{Name: name}
	for _, rows := range layouts {
		m.Rooms = append(m.Rooms, createTestRoom(t, rows...))
	}
	require.NoError(t, m.Validate())
	return m
}

func createTestPhysicsConfig() *config.PhysicsConfig {
	cfg := config.DefaultPhysics()
	return &cfg
}

func createTestSession(t *testing.T, layouts ...[]string) *Session {
	t.Helper()
	return NewSession(createTestMap(t, "test", layouts...), createTestPhysicsConfig(), false)
}

// settle runs one frame long enough to use up the respawn timeout
func settle(s *Session) {
	s.Update(s.config.RespawnTimeout + 0.01)
}

// runFrames advances the session n frames at 60 fps
func runFrames(s *Session, n int) *MapFinished {
	for i := 0; i < n; i++ {
		if finished := s.Update(1.0 / 60.0); finished != nil {
			return finished
		}
	}
	return nil
}

// floorRoom is a single floor cell with the respawn point right above it
var floorRoom = []string{
	"",
	"",
	"..S",
	"..#",
}

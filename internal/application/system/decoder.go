package system

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/younwookim/nanoplatformer/internal/domain/entity"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// rgb is an opaque map color. Alpha is ignored when sampling.
type rgb struct {
	R, G, B uint8
}

// Map palette
var (
	colorWall         = rgb{255, 255, 255}
	colorDeadlyWall   = rgb{255, 0, 0}
	colorRespawnPoint = rgb{255, 255, 0}
	colorJumpPad      = rgb{0, 255, 0}
	colorJumpOrb      = rgb{0, 0, 255}
	colorDashOrb      = rgb{255, 0, 255}
	colorRoomFinish   = rgb{0, 255, 255}
	colorCheckpoint   = rgb{0, 127, 127}
)

// sampleCell reads the color for cell (x, y).
// Object images are sampled one pixel per cell at pixel (x, y), not at the
// cell center; existing maps depend on this.
func sampleCell(img image.Image, x, y int) rgb {
	b := img.Bounds()
	c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return rgb{c.R, c.G, c.B}
}

// DecodeObjects converts a room's object image into walls and specials.
// Cells are scanned column by column (x outer, y inner), which fixes the
// order walls are resolved and specials are processed in.
func DecodeObjects(room int, img image.Image) ([]entity.ColliderBox, []entity.SpecialObject, error) {
	b := img.Bounds()
	if b.Dx() < entity.GridWidth || b.Dy() < entity.GridHeight {
		return nil, nil, &entity.DecodeError{Room: room, Width: b.Dx(), Height: b.Dy()}
	}

	var walls []entity.ColliderBox
	var specials []entity.SpecialObject
	for x := 0; x < entity.GridWidth; x++ {
		for y := 0; y < entity.GridHeight; y++ {
			switch sampleCell(img, x, y) {
			case colorWall:
				walls = append(walls, entity.NewCellBox(x, y, 0, 0, entity.TileSize, entity.TileSize))
			case colorDeadlyWall:
				wall := entity.NewCellBox(x, y, 0, 0, entity.TileSize, entity.TileSize)
				wall.Deadly = true
				walls = append(walls, wall)
			case colorRespawnPoint:
				specials = append(specials, entity.NewSpecial(entity.RespawnPoint, x, y))
			case colorJumpPad:
				specials = append(specials, entity.NewSpecial(entity.JumpPad, x, y))
			case colorJumpOrb:
				specials = append(specials, entity.NewSpecial(entity.JumpOrb, x, y))
			case colorDashOrb:
				specials = append(specials, entity.NewSpecial(entity.DashOrb, x, y))
			case colorRoomFinish:
				specials = append(specials, entity.NewSpecial(entity.RoomFinish, x, y))
			case colorCheckpoint:
				specials = append(specials, entity.NewSpecial(entity.Checkpoint, x, y))
			}
		}
	}
	return walls, specials, nil
}

// DecodeRoom builds a Room from its decoded image pair
func DecodeRoom(index int, images config.RoomImages) (*entity.Room, error) {
	walls, specials, err := DecodeObjects(index, images.Objects)
	if err != nil {
		return nil, err
	}
	return &entity.Room{
		Background: images.Background,
		Walls:      walls,
		Specials:   specials,
	}, nil
}

// LoadMap decodes every room of a map and checks it can be played.
func LoadMap(src *config.MapSource, name string) (*entity.Map, error) {
	images, err := src.LoadRoomImages(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", name, err)
	}

	m := &entity.Map{Name: name, Rooms: make([]*entity.Room, 0, len(images))}
	for i, pair := range images {
		room, err := DecodeRoom(i, pair)
		if err != nil {
			return nil, fmt.Errorf("failed to load map %s: %w", name, err)
		}
		m.Rooms = append(m.Rooms, room)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", name, err)
	}

	log.Printf("Map loaded: %s (%d rooms)", name, len(m.Rooms))
	return m, nil
}

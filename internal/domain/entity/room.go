package entity

import "image"

// Room grid dimensions in cells.
const (
	GridWidth  = 80
	GridHeight = 45
)

// Room is one screen of static geometry plus its interactive objects.
// Walls never change after load; Specials are mutated in place (orb
// timers, checkpoint flags) and belong to this room only.
type Room struct {
	Background image.Image
	Walls      []ColliderBox
	Specials   []SpecialObject
}

// RespawnPoint returns the position of the first respawn point in the room.
func (r *Room) RespawnPoint() (x, y float64, ok bool) {
	for i := range r.Specials {
		if r.Specials[i].Kind == RespawnPoint {
			return float64(r.Specials[i].X), float64(r.Specials[i].Y), true
		}
	}
	return 0, 0, false
}

// ActiveCheckpoint returns the active checkpoint, or nil if none is active.
func (r *Room) ActiveCheckpoint() *SpecialObject {
	for i := range r.Specials {
		obj := &r.Specials[i]
		if obj.Kind == Checkpoint && obj.Active {
			return obj
		}
	}
	return nil
}

// ActivateCheckpoint makes the checkpoint at index i the only active one.
func (r *Room) ActivateCheckpoint(i int) {
	for j := range r.Specials {
		if r.Specials[j].Kind == Checkpoint {
			r.Specials[j].Active = j == i
		}
	}
}

// Map is an ordered sequence of rooms identified by name.
type Map struct {
	Name  string
	Rooms []*Room
}

// Validate checks that the map can be played: at least one room and a
// respawn point in every room.
func (m *Map) Validate() error {
	if len(m.Rooms) == 0 {
		return &MapIntegrityError{Map: m.Name, Room: -1, Err: ErrNoRooms}
	}
	for i, room := range m.Rooms {
		if _, _, ok := room.RespawnPoint(); !ok {
			return &MapIntegrityError{Map: m.Name, Room: i, Err: ErrNoRespawnPoint}
		}
	}
	return nil
}

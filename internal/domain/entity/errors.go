package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRespawnPoint means a room has no RespawnPoint to place the player at.
	ErrNoRespawnPoint = errors.New("room has no respawn point")
	// ErrNoRooms means a map directory held no room images.
	ErrNoRooms = errors.New("map has no rooms")
	// ErrMissingRoomPair means bg{i}.png or obj{i}.png is absent.
	ErrMissingRoomPair = errors.New("missing room image pair")
)

// DecodeError reports a room image that could not be decoded, or an object
// image too small to sample every cell.
type DecodeError struct {
	Room          int
	Width, Height int
	Err           error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("room %d: %v", e.Room+1, e.Err)
	}
	return fmt.Sprintf("room %d: object image %dx%d is smaller than the %dx%d cell grid",
		e.Room+1, e.Width, e.Height, GridWidth, GridHeight)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MapIntegrityError reports a map that cannot be played as stored.
// Room is zero-based, or -1 when the problem is not tied to one room.
type MapIntegrityError struct {
	Map  string
	Room int
	Err  error
}

func (e *MapIntegrityError) Error() string {
	if e.Room < 0 {
		return fmt.Sprintf("map %q: %v", e.Map, e.Err)
	}
	return fmt.Sprintf("map %q room %d: %v", e.Map, e.Room+1, e.Err)
}

func (e *MapIntegrityError) Unwrap() error {
	return e.Err
}

package state

// GameState represents where a play session is in its level progression
type GameState int

const (
	StateLoading GameState = iota
	StateRoomActive
	StateRespawning
	StateMapComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRoomActive:
		return "RoomActive"
	case StateRespawning:
		return "Respawning"
	case StateMapComplete:
		return "MapComplete"
	default:
		return "Unknown"
	}
}

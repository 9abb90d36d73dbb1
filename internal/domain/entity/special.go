package entity

// SpecialKind tags the variant of a SpecialObject.
type SpecialKind int

const (
	RespawnPoint SpecialKind = iota
	JumpPad
	JumpOrb
	DashOrb
	RoomFinish
	Checkpoint
)

// String returns the name of the kind
func (k SpecialKind) String() string {
	switch k {
	case RespawnPoint:
		return "RespawnPoint"
	case JumpPad:
		return "JumpPad"
	case JumpOrb:
		return "JumpOrb"
	case DashOrb:
		return "DashOrb"
	case RoomFinish:
		return "RoomFinish"
	case Checkpoint:
		return "Checkpoint"
	default:
		return "Unknown"
	}
}

// SpecialObject is an interactive map element.
//
// The set of kinds is closed, so every handler switches on Kind instead of
// dispatching through an interface. X and Y hold the cell origin the object
// is drawn at. Collider is unused for RespawnPoint. InactiveTimer is only
// meaningful for orbs and Active only for checkpoints.
type SpecialObject struct {
	Kind     SpecialKind
	X, Y     int
	Collider ColliderBox

	InactiveTimer float64
	Active        bool
}

// NewSpecial builds the object a map cell decodes to, with the collider
// placed the way each kind expects.
func NewSpecial(kind SpecialKind, cellX, cellY int) SpecialObject {
	obj := SpecialObject{
		Kind: kind,
		X:    cellX * TileSize,
		Y:    cellY * TileSize,
	}
	switch kind {
	case JumpPad:
		obj.Collider = NewCellBox(cellX, cellY, 0, 18, 24, 6)
	case JumpOrb, DashOrb:
		obj.Collider = NewCellBox(cellX, cellY, 4, 4, 16, 16)
	case RoomFinish:
		obj.Collider = NewCellBox(cellX, cellY, 0, 0, 24, 24)
	case Checkpoint:
		obj.Collider = NewCellBox(cellX, cellY, 6, 6, 14, 17)
	}
	return obj
}

// Ready reports whether an orb's cooldown has run out.
func (o *SpecialObject) Ready() bool {
	return o.InactiveTimer <= 0
}

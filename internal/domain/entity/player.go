package entity

// PlayerSize is the edge length of the player collider.
const PlayerSize = 24

// Player represents the player entity.
// There is one per play session; death resets it in place.
type Player struct {
	Collider ColliderBox

	MomentumX, MomentumY float64

	CanJump      bool
	CanDash      bool
	GrabbingWall bool

	// Timers
	DashTimer    float64 // remaining dash duration
	DashTimeout  float64 // refractory window before the next dash
	DashMomentum float64

	// Held and buffered input
	MovingLeft  bool
	MovingRight bool
	ShouldJump  bool
	ShouldDash  bool

	Deaths      int
	ElapsedTime float64
}

// NewPlayer creates a player at the given pixel position
func NewPlayer(x, y float64) *Player {
	return &Player{
		Collider: ColliderBox{X: x, Y: y, Width: PlayerSize, Height: PlayerSize},
	}
}

// SetPos moves the player collider to the given pixel position
func (p *Player) SetPos(x, y float64) {
	p.Collider.X = x
	p.Collider.Y = y
}

// IsDashing returns true while a dash is in progress
func (p *Player) IsDashing() bool {
	return p.DashTimer > 0
}

// Refill grants both the jump and the dash.
func (p *Player) Refill() {
	p.CanJump = true
	p.CanDash = true
}

// Stop zeroes momentum and dash state and revokes both abilities.
func (p *Player) Stop() {
	p.MomentumX = 0
	p.MomentumY = 0
	p.CanJump = false
	p.CanDash = false
	p.DashTimer = 0
}

// Center returns the center of the collider in whole pixels
func (p *Player) Center() (int, int) {
	return int(p.Collider.X) + PlayerSize/2, int(p.Collider.Y) + PlayerSize/2
}

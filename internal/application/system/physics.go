package system

import (
	"math"

	"github.com/younwookim/nanoplatformer/internal/domain/entity"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// PhysicsSystem integrates player movement and resolves it against a room's
// walls. It moves the player a whole frame at a time and then steps it back
// out of any wall one pixel at a time.
type PhysicsSystem struct {
	config *config.PhysicsConfig

	// OnStuck is called when stepping out of a wall exceeds MaxStepOut.
	OnStuck func(wall entity.ColliderBox)
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// MoveVertical applies gravity and resolves vertical collisions.
func (s *PhysicsSystem) MoveVertical(player *entity.Player, room *entity.Room, dt float64) {
	// No gravity during dash
	if !player.IsDashing() {
		player.MomentumY += s.config.Gravity * dt
		player.Collider.Y += player.MomentumY * dt
	}

	// Holding a wall cancels the fall
	if player.GrabbingWall && player.MomentumY > 0 {
		player.Collider.Y -= player.MomentumY * dt
		player.MomentumY = 0
	}

	for _, wall := range room.Walls {
		if wall.Deadly || !wall.IsColliding(player.Collider) {
			continue
		}
		player.DashTimer = 0
		var ok bool
		if player.MomentumY > 0 {
			// Landed
			player.Refill()
			ok = s.stepOut(player, wall, 0, -1)
		} else {
			ok = s.stepOut(player, wall, 0, 1)
		}
		player.MomentumY = 0
		if !ok {
			return
		}
	}
}

// MoveHorizontal applies horizontal momentum and resolves wall contact.
// Touching a wall refills jump and dash and starts a wall grab.
func (s *PhysicsSystem) MoveHorizontal(player *entity.Player, room *entity.Room, dt float64) {
	player.GrabbingWall = false
	if player.IsDashing() {
		player.MomentumX = player.DashMomentum
	}
	player.Collider.X += player.MomentumX * dt

	for _, wall := range room.Walls {
		if wall.Deadly || !wall.IsColliding(player.Collider) {
			continue
		}
		var ok bool
		if player.MomentumX < 0 {
			ok = s.stepOut(player, wall, 1, 0)
		} else {
			ok = s.stepOut(player, wall, -1, 0)
		}
		player.Refill()
		player.GrabbingWall = true
		player.MomentumX = 0
		if !ok {
			return
		}
	}
}

// TouchesDeadly reports whether the player overlaps any deadly wall
func (s *PhysicsSystem) TouchesDeadly(player *entity.Player, room *entity.Room) bool {
	for _, wall := range room.Walls {
		if wall.Deadly && wall.IsColliding(player.Collider) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the player left the playable area
func (s *PhysicsSystem) OutOfBounds(player *entity.Player) bool {
	c := player.Collider
	return c.X < 0 || c.Y < 0 || c.X > s.config.BoundsWidth || c.Y > s.config.BoundsHeight
}

// ApplyJumpAndDash honors buffered jump and dash requests and runs the dash timers.
func (s *PhysicsSystem) ApplyJumpAndDash(player *entity.Player, dt float64) {
	if player.ShouldJump {
		if player.CanJump {
			player.Collider.Y -= 1
			player.MomentumY = s.config.JumpVelocity
			player.CanJump = false
		}
		player.ShouldJump = false
	}

	player.DashTimer -= dt
	player.DashTimeout -= dt

	if player.ShouldDash {
		if player.CanDash && player.DashTimeout <= 0 && player.MomentumX != 0 {
			player.MomentumY = math.Min(player.MomentumY, 0)
			player.CanDash = false
			player.DashTimer = s.config.DashDuration
			player.Collider.Y = math.Trunc(player.Collider.Y + 1)
			player.DashMomentum = player.MomentumX * s.config.DashMultiplier
			player.DashTimeout = s.config.DashTimeout
		}
		player.ShouldDash = false
	}
}

// ReleaseJump cuts upward momentum when the jump key is let go
func (s *PhysicsSystem) ReleaseJump(player *entity.Player, full bool) {
	if player.MomentumY >= 0 {
		return
	}
	if full {
		player.MomentumY = 0
	} else {
		player.MomentumY /= s.config.JumpReleaseDamp
	}
}

// stepOut moves the player by (dx, dy) until it no longer overlaps wall.
// Returns false if the cap was hit; OnStuck is then responsible for
// placing the player somewhere sane.
func (s *PhysicsSystem) stepOut(player *entity.Player, wall entity.ColliderBox, dx, dy float64) bool {
	for i := 0; wall.IsColliding(player.Collider); i++ {
		if i >= s.config.MaxStepOut {
			if s.OnStuck != nil {
				s.OnStuck(wall)
			}
			return false
		}
		player.Collider.X += dx
		player.Collider.Y += dy
	}
	return true
}

package system

import (
	"log"

	"github.com/younwookim/nanoplatformer/internal/application/state"
	"github.com/younwookim/nanoplatformer/internal/domain/entity"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// MapFinished is handed to the next scene when the last room is cleared.
type MapFinished struct {
	Map         string
	ElapsedTime float64
	Deaths      int
}

// Session runs one play-through of a map: room progression, checkpoints,
// death and respawn, and the per-frame physics order.
type Session struct {
	config          *config.PhysicsConfig
	physics         *PhysicsSystem
	fullJumpRelease bool

	gameMap *entity.Map
	player  *entity.Player
	room    int
	state   state.GameState

	hasActiveCheckpoint bool
	updateTimeout       float64
	effect              Effect
}

// NewSession starts a map from its first room. The map must have passed
// Validate; every room then has a respawn point.
func NewSession(m *entity.Map, cfg *config.PhysicsConfig, fullJumpRelease bool) *Session {
	s := &Session{
		config:          cfg,
		physics:         NewPhysicsSystem(cfg),
		fullJumpRelease: fullJumpRelease,
		gameMap:         m,
		player:          entity.NewPlayer(0, 0),
		state:           state.StateLoading,
	}
	s.physics.OnStuck = s.handleStuck
	s.PlayerReset()
	s.state = state.StateRespawning
	return s
}

// Player returns the simulated player
func (s *Session) Player() *entity.Player {
	return s.player
}

// Map returns the map being played
func (s *Session) Map() *entity.Map {
	return s.gameMap
}

// RoomIndex returns the zero-based index of the current room
func (s *Session) RoomIndex() int {
	return s.room
}

// Room returns the current room, or nil once the map is complete
func (s *Session) Room() *entity.Room {
	if s.room >= len(s.gameMap.Rooms) {
		return nil
	}
	return s.gameMap.Rooms[s.room]
}

// State returns the session's progression state
func (s *Session) State() state.GameState {
	return s.state
}

// Effect returns the current jump/death effect
func (s *Session) Effect() *Effect {
	return &s.effect
}

// HasActiveCheckpoint reports whether respawns use a checkpoint in this room
func (s *Session) HasActiveCheckpoint() bool {
	return s.hasActiveCheckpoint
}

// KeyDown handles a pressed action
func (s *Session) KeyDown(a Action) {
	switch a {
	case ActionJump:
		s.player.ShouldJump = true
	case ActionDash:
		s.player.ShouldDash = true
	case ActionRight:
		s.player.MovingRight = true
	case ActionLeft:
		s.player.MovingLeft = true
	}
}

// KeyUp handles a released action
func (s *Session) KeyUp(a Action) {
	switch a {
	case ActionJump:
		s.physics.ReleaseJump(s.player, s.fullJumpRelease)
	case ActionLeft:
		s.player.MovingLeft = false
	case ActionRight:
		s.player.MovingRight = false
	}
}

// HeldMovement returns key-down events for the movement keys currently
// held, so a new session can pick up where this one left off.
func (s *Session) HeldMovement() []KeyEvent {
	var held []KeyEvent
	if s.player.MovingLeft {
		held = append(held, KeyEvent{Action: ActionLeft, Down: true})
	}
	if s.player.MovingRight {
		held = append(held, KeyEvent{Action: ActionRight, Down: true})
	}
	return held
}

// Apply feeds a batch of key events in order
func (s *Session) Apply(events []KeyEvent) {
	for _, e := range events {
		if e.Down {
			s.KeyDown(e.Action)
		} else {
			s.KeyUp(e.Action)
		}
	}
}

// PlayerReset stops the player and puts it back at the room's active
// checkpoint, or at its respawn point if no checkpoint is active. Physics
// is frozen for the respawn timeout afterwards.
func (s *Session) PlayerReset() {
	s.player.Stop()
	s.updateTimeout = s.config.RespawnTimeout

	room := s.Room()
	if room == nil {
		return
	}
	if s.hasActiveCheckpoint {
		if cp := room.ActiveCheckpoint(); cp != nil {
			s.player.SetPos(float64(cp.X), float64(cp.Y))
			return
		}
	}
	if x, y, ok := room.RespawnPoint(); ok {
		s.player.SetPos(x, y)
	}
}

// PlayerDie counts a death, starts the death effect and resets the player.
func (s *Session) PlayerDie() {
	x, y := s.player.Center()
	s.effect.Start(true, x, y, s.config.EffectDuration)
	s.PlayerReset()
	s.player.Deaths++
	s.state = state.StateRespawning
}

// Update advances the simulation by dt seconds. It returns a non-nil
// MapFinished exactly once, on the frame the last room is cleared; after
// that it does nothing.
func (s *Session) Update(dt float64) *MapFinished {
	if s.state == state.StateMapComplete {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	s.player.ElapsedTime += dt

	s.effect.Update(dt)

	// Frozen after a reset
	if s.updateTimeout > 0 {
		s.updateTimeout -= dt
		return nil
	}
	s.state = state.StateRoomActive

	s.applyMovementInput()

	room := s.Room()
	advanced, finished := s.updateSpecials(room, dt)
	if finished != nil {
		return finished
	}
	if advanced {
		return nil
	}

	s.physics.MoveVertical(s.player, room, dt)
	if s.state == state.StateRespawning {
		return nil
	}
	s.physics.MoveHorizontal(s.player, room, dt)
	if s.state == state.StateRespawning {
		return nil
	}

	if s.physics.TouchesDeadly(s.player, room) || s.physics.OutOfBounds(s.player) {
		s.PlayerDie()
		return nil
	}

	s.physics.ApplyJumpAndDash(s.player, dt)
	return nil
}

// applyMovementInput sets horizontal momentum from held keys.
// Right is checked last, so holding both moves right.
func (s *Session) applyMovementInput() {
	s.player.MomentumX = 0
	if s.player.MovingLeft {
		s.player.MomentumX = -s.config.MoveSpeed
	}
	if s.player.MovingRight {
		s.player.MomentumX = s.config.MoveSpeed
	}
}

// updateSpecials processes the room's objects in order. It reports whether
// the player left the room, and the completion event if that was the last one.
func (s *Session) updateSpecials(room *entity.Room, dt float64) (bool, *MapFinished) {
	for i := range room.Specials {
		obj := &room.Specials[i]
		switch obj.Kind {
		case entity.JumpPad:
			s.touchJumpPad(obj)
		case entity.JumpOrb, entity.DashOrb:
			s.touchOrb(obj, dt)
		case entity.Checkpoint:
			s.touchCheckpoint(room, i)
		case entity.RoomFinish:
			if obj.Collider.IsColliding(s.player.Collider) {
				return true, s.advanceRoom()
			}
		}
	}
	return false, nil
}

func (s *Session) touchJumpPad(pad *entity.SpecialObject) {
	if !pad.Collider.IsColliding(s.player.Collider) {
		return
	}
	s.player.MomentumY = s.config.JumpPadVelocity
	s.player.Refill()
	s.effect.Start(false, pad.X+entity.TileSize/2, pad.Y+entity.TileSize/2, s.config.EffectDuration)
}

// touchOrb runs the orb cooldown and grants its ability if the player
// touches it while lacking that ability.
func (s *Session) touchOrb(orb *entity.SpecialObject, dt float64) {
	orb.InactiveTimer -= dt

	has := s.player.CanJump
	if orb.Kind == entity.DashOrb {
		has = s.player.CanDash
	}
	if has || !orb.Ready() || !orb.Collider.IsColliding(s.player.Collider) {
		return
	}

	if orb.Kind == entity.DashOrb {
		s.player.CanDash = true
	} else {
		s.player.CanJump = true
	}
	orb.InactiveTimer = s.config.OrbCooldown
}

func (s *Session) touchCheckpoint(room *entity.Room, i int) {
	cp := &room.Specials[i]
	if cp.Active || !cp.Collider.IsColliding(s.player.Collider) {
		return
	}
	room.ActivateCheckpoint(i)
	s.hasActiveCheckpoint = true
}

// advanceRoom moves to the next room, or completes the map after the last.
func (s *Session) advanceRoom() *MapFinished {
	s.room++
	s.hasActiveCheckpoint = false

	if s.room >= len(s.gameMap.Rooms) {
		s.state = state.StateMapComplete
		finished := &MapFinished{
			Map:         s.gameMap.Name,
			ElapsedTime: s.player.ElapsedTime,
			Deaths:      s.player.Deaths,
		}
		log.Printf("Map finished: %s in %.3fs with %d deaths", finished.Map, finished.ElapsedTime, finished.Deaths)
		return finished
	}

	log.Printf("Entered room %d/%d of %s", s.room+1, len(s.gameMap.Rooms), s.gameMap.Name)
	s.PlayerReset()
	s.state = state.StateRespawning
	return nil
}

func (s *Session) handleStuck(wall entity.ColliderBox) {
	log.Printf("Player stuck in wall at (%.0f, %.0f) after %d px, teleporting to respawn",
		wall.X, wall.Y, s.config.MaxStepOut)
	s.PlayerReset()
	s.state = state.StateRespawning
}

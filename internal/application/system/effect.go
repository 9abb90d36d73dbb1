package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EffectStrength is the starting strength of a jump or death effect.
const EffectStrength = 255

// Effect is the expanding circle shown where the player died or hit a pad.
// Its strength falls linearly from 255 to 0.
type Effect struct {
	tween    *gween.Tween
	strength float64

	Death bool
	X, Y  int
}

// Start restarts the effect at a pixel position
func (e *Effect) Start(death bool, x, y int, duration float64) {
	e.Death = death
	e.X = x
	e.Y = y
	e.strength = EffectStrength
	e.tween = gween.New(EffectStrength, 0, float32(duration), ease.Linear)
}

// Update advances the fade by dt seconds
func (e *Effect) Update(dt float64) {
	if e.tween == nil {
		return
	}
	current, finished := e.tween.Update(float32(dt))
	e.strength = float64(current)
	if finished {
		e.tween = nil
		e.strength = 0
	}
}

// Strength returns the remaining strength, 0 once faded
func (e *Effect) Strength() float64 {
	return e.strength
}

// Active reports whether the effect is still visible
func (e *Effect) Active() bool {
	return e.strength > 0
}

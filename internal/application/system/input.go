package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// InputSystem turns key transitions into action events using the
// configured bindings.
type InputSystem struct {
	bindings map[ebiten.Key]Action

	pressed  []ebiten.Key
	released []ebiten.Key
}

// ParseKey resolves a key name such as "Space" or "shiftleft" to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// NewInputSystem creates a new input system from the control bindings.
// When one key is bound to several actions, jump beats dash, dash beats
// right and right beats left.
func NewInputSystem(cfg config.ControlsConfig) (*InputSystem, error) {
	s := &InputSystem{bindings: make(map[ebiten.Key]Action, 4)}

	// Lowest priority first so later bindings overwrite
	order := []struct {
		action Action
		name   string
	}{
		{ActionLeft, cfg.Left},
		{ActionRight, cfg.Right},
		{ActionDash, cfg.Dash},
		{ActionJump, cfg.Jump},
	}
	for _, b := range order {
		key, err := ParseKey(b.name)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.action, err)
		}
		s.bindings[key] = b.action
	}
	return s, nil
}

// Poll reads this tick's key transitions
func (s *InputSystem) Poll() []KeyEvent {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	return s.Translate(s.pressed, s.released)
}

// Translate maps raw key transitions to action events, presses first.
// Unbound keys are dropped.
func (s *InputSystem) Translate(pressed, released []ebiten.Key) []KeyEvent {
	var events []KeyEvent
	for _, k := range pressed {
		if a, ok := s.bindings[k]; ok {
			events = append(events, KeyEvent{Action: a, Down: true})
		}
	}
	for _, k := range released {
		if a, ok := s.bindings[k]; ok {
			events = append(events, KeyEvent{Action: a, Down: false})
		}
	}
	return events
}

// Binding returns the action bound to a key
func (s *InputSystem) Binding(k ebiten.Key) (Action, bool) {
	a, ok := s.bindings[k]
	return a, ok
}

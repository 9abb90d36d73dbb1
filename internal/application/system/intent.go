package system

// Action is a logical control the player can bind a key to
type Action int

const (
	ActionJump Action = iota
	ActionLeft
	ActionRight
	ActionDash
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDash:
		return "dash"
	default:
		return "unknown"
	}
}

// ParseAction is the inverse of Action.String
func ParseAction(name string) (Action, bool) {
	for a := ActionJump; a <= ActionDash; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// KeyEvent is a key press or release already translated to an action.
type KeyEvent struct {
	Action Action
	Down   bool
}

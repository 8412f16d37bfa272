package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate raw key events into actions; the game only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up - flap
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C, Esc - close the host (never reaches game state)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one host tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Each calls fn for every triggered action in a stable order
// (the declaration order of the Action constants).
func (f InputFrame) Each(fn func(Action)) {
	for a := ActionJump; a <= ActionQuit; a++ {
		if f.Has(a) {
			fn(a)
		}
	}
}

// KeyBinding binds host keys of type K to an action. A Held binding
// triggers on every tick its key is down; otherwise only on the tick the
// key goes down.
type KeyBinding[K comparable] struct {
	Action Action
	Keys   []K
	Held   bool
}

// PollKeys builds the input frame for one host tick. down reports whether
// a key is currently pressed, pressed whether it went down this tick.
func PollKeys[K comparable](bindings []KeyBinding[K], down, pressed func(K) bool) InputFrame {
	f := NewInputFrame()
	for _, b := range bindings {
		active := pressed
		if b.Held {
			active = down
		}
		for _, k := range b.Keys {
			if active(k) {
				f.Set(b.Action)
				break
			}
		}
	}
	return f
}

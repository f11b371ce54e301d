// Package input turns raw key events into per-frame action state.
package input

// Action is a logical game input.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionExit // Leave combat
	ActionQuit // Leave the game
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionExit:
		return "exit"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (a Action) bit() uint32 {
	return 1 << uint(a)
}

// Snapshot is the action state for one frame.
type Snapshot struct {
	pressed uint32
	just    uint32
}

// Held returns a snapshot with the actions held down since an earlier frame.
func Held(actions ...Action) *Snapshot {
	s := &Snapshot{}
	for _, a := range actions {
		s.pressed |= a.bit()
	}
	return s
}

// Tapped returns a snapshot with the actions pressed this frame.
func Tapped(actions ...Action) *Snapshot {
	s := Held(actions...)
	s.just = s.pressed
	return s
}

// Pressed returns true while the action is held.
func (s *Snapshot) Pressed(a Action) bool {
	return s.pressed&a.bit() != 0
}

// JustPressed returns true only on the frame the action went down.
func (s *Snapshot) JustPressed(a Action) bool {
	return s.just&a.bit() != 0
}

// Clear releases every action.
func (s *Snapshot) Clear() {
	s.pressed = 0
	s.just = 0
}

package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a key counts as held after its last event.
const DefaultHold = 150 * time.Millisecond

// Tracker derives held keys from terminal key events. Terminals report key
// presses and auto-repeats but no releases, so a key stays held until no
// event for it arrived within the hold window.
type Tracker struct {
	Snapshot

	hold     time.Duration
	lastSeen map[Action]time.Time
	fresh    uint32
}

// NewTracker creates a tracker with the given hold window.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Tracker{
		hold:     hold,
		lastSeen: make(map[Action]time.Time),
	}
}

// ActionsFor maps a key event to the actions it triggers.
// Space both jumps and leaves combat; the active mode decides which matters.
func ActionsFor(ev *tcell.EventKey) []Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return []Action{ActionUp}
	case tcell.KeyDown:
		return []Action{ActionDown}
	case tcell.KeyLeft:
		return []Action{ActionLeft}
	case tcell.KeyRight:
		return []Action{ActionRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []Action{ActionQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return []Action{ActionUp}
		case 's', 'S':
			return []Action{ActionDown}
		case 'a', 'A':
			return []Action{ActionLeft}
		case 'd', 'D':
			return []Action{ActionRight}
		case ' ':
			return []Action{ActionJump, ActionExit}
		case 'q', 'Q':
			return []Action{ActionQuit}
		}
	}
	return nil
}

// HandleKey records a key event.
func (t *Tracker) HandleKey(ev *tcell.EventKey) {
	for _, a := range ActionsFor(ev) {
		if !t.held(a, ev.When()) {
			t.fresh |= a.bit()
		}
		t.lastSeen[a] = ev.When()
	}
}

func (t *Tracker) held(a Action, now time.Time) bool {
	seen, ok := t.lastSeen[a]
	return ok && now.Sub(seen) <= t.hold
}

// Latch computes the frame's snapshot. Call once per frame before reading it.
func (t *Tracker) Latch(now time.Time) {
	var pressed uint32
	for a := range t.lastSeen {
		if t.held(a, now) {
			pressed |= a.bit()
		}
	}
	t.Snapshot = Snapshot{pressed: pressed | t.fresh, just: t.fresh}
	t.fresh = 0
}

// Clear forgets every key seen so far.
func (t *Tracker) Clear() {
	t.Snapshot.Clear()
	clear(t.lastSeen)
	t.fresh = 0
}

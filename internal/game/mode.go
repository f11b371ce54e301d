// Package game provides the frame-stepped simulation and the terminal game loop.
package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
)

// Mode is the top-level application mode. It decides which systems run.
type Mode int

const (
	// ModeExploration is the initial mode where the player walks the map.
	ModeExploration Mode = iota
	// ModeCombat is the combat screen. The map and the player are hidden.
	ModeCombat
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExploration:
		return "exploration"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// allowed lists the modes reachable from each mode.
var allowed = map[Mode][]Mode{
	ModeExploration: {ModeCombat},
	ModeCombat:      {ModeExploration},
}

// ErrInvalidTransition is wrapped by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid mode transition")

// InvalidTransitionError reports a transition the current mode does not allow.
// It is not fatal: the request is ignored.
type InvalidTransitionError struct {
	From, To Mode
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot switch from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// Hook runs when a mode is entered or exited.
type Hook func(ctx context.Context) error

// ModeMachine holds the current mode and runs enter/exit hooks on transitions.
type ModeMachine struct {
	current Mode
	onEnter map[Mode][]Hook
	onExit  map[Mode][]Hook
}

// NewModeMachine creates a machine in the given mode. Its enter hooks run on Start.
func NewModeMachine(initial Mode) *ModeMachine {
	return &ModeMachine{
		current: initial,
		onEnter: make(map[Mode][]Hook),
		onExit:  make(map[Mode][]Hook),
	}
}

// Current returns the active mode.
func (m *ModeMachine) Current() Mode {
	return m.current
}

// OnEnter registers a hook to run, in registration order, when mode is entered.
func (m *ModeMachine) OnEnter(mode Mode, hook Hook) {
	m.onEnter[mode] = append(m.onEnter[mode], hook)
}

// OnExit registers a hook to run, in registration order, when mode is left.
func (m *ModeMachine) OnExit(mode Mode, hook Hook) {
	m.onExit[mode] = append(m.onExit[mode], hook)
}

// Start runs the enter hooks of the initial mode.
func (m *ModeMachine) Start(ctx context.Context) error {
	return runHooks(ctx, m.onEnter[m.current])
}

// Request switches to the given mode. Exit hooks of the old mode run before
// enter hooks of the new one, all within this call. A transition the current
// mode does not allow returns an *InvalidTransitionError and changes nothing.
func (m *ModeMachine) Request(ctx context.Context, to Mode) error {
	from := m.current
	if !canSwitch(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "mode.transition")
	defer span.End()
	span.SetAttributes(
		attribute.String("mode.from", from.String()),
		attribute.String("mode.to", to.String()),
	)

	if err := runHooks(ctx, m.onExit[from]); err != nil {
		span.RecordError(err)
		return fmt.Errorf("leaving %s: %w", from, err)
	}
	m.current = to
	if err := runHooks(ctx, m.onEnter[to]); err != nil {
		span.RecordError(err)
		return fmt.Errorf("entering %s: %w", to, err)
	}

	logger.Component("modes").WithField("from", from.String()).
		WithField("to", to.String()).Info("mode changed")
	return nil
}

func canSwitch(from, to Mode) bool {
	for _, m := range allowed[from] {
		if m == to {
			return true
		}
	}
	return false
}

func runHooks(ctx context.Context, hooks []Hook) error {
	for _, h := range hooks {
		if err := h(ctx); err != nil {
			return err
		}
	}
	return nil
}

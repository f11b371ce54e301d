package game

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeExploration, "exploration"},
		{ModeCombat, "combat"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestModeMachineHookOrder(t *testing.T) {
	ctx := context.Background()
	m := NewModeMachine(ModeExploration)

	var calls []string
	record := func(name string) Hook {
		return func(context.Context) error {
			calls = append(calls, name)
			return nil
		}
	}
	m.OnEnter(ModeExploration, record("enter exploration"))
	m.OnExit(ModeExploration, record("exit exploration"))
	m.OnEnter(ModeCombat, record("enter combat 1"))
	m.OnEnter(ModeCombat, record("enter combat 2"))
	m.OnExit(ModeCombat, record("exit combat"))

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := m.Request(ctx, ModeCombat); err != nil {
		t.Fatalf("Request(combat) error: %v", err)
	}
	if err := m.Request(ctx, ModeExploration); err != nil {
		t.Fatalf("Request(exploration) error: %v", err)
	}

	expected := []string{
		"enter exploration",
		"exit exploration",
		"enter combat 1",
		"enter combat 2",
		"exit combat",
		"enter exploration",
	}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("hook calls = %v, want %v", calls, expected)
	}
}

func TestModeMachineInvalidTransition(t *testing.T) {
	ctx := context.Background()
	m := NewModeMachine(ModeCombat)

	entered := 0
	m.OnEnter(ModeCombat, func(context.Context) error {
		entered++
		return nil
	})

	err := m.Request(ctx, ModeCombat)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Request(combat) while in combat error = %v, want ErrInvalidTransition", err)
	}
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) || ite.From != ModeCombat || ite.To != ModeCombat {
		t.Errorf("error = %v, want combat -> combat", err)
	}
	if entered != 0 {
		t.Error("enter hooks ran for a rejected transition")
	}
	if m.Current() != ModeCombat {
		t.Errorf("Current() = %v, want combat", m.Current())
	}

	if err := m.Request(ctx, Mode(7)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Request(unknown) error = %v, want ErrInvalidTransition", err)
	}
}

func TestModeMachineHookError(t *testing.T) {
	ctx := context.Background()
	m := NewModeMachine(ModeExploration)

	boom := errors.New("boom")
	m.OnEnter(ModeCombat, func(context.Context) error { return boom })

	if err := m.Request(ctx, ModeCombat); !errors.Is(err, boom) {
		t.Errorf("Request() error = %v, want wrapped boom", err)
	}
}

package entity

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "player"},
		{KindBackground, "background"},
		{KindCamera, "camera"},
		{KindMap, "map"},
		{KindEnemy, "enemy"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestSceneSingle(t *testing.T) {
	s := NewScene()

	_, err := s.Single(KindPlayer)
	var mse *MissingSingletonError
	if !errors.As(err, &mse) {
		t.Fatalf("Single() on empty scene error = %v, want MissingSingletonError", err)
	}
	if mse.Count != 0 || mse.What != "player" {
		t.Errorf("MissingSingletonError = %+v, want player/0", mse)
	}

	player := s.Spawn("Player", KindPlayer, Vec3{}, nil)
	got, err := s.Single(KindPlayer)
	if err != nil {
		t.Fatalf("Single() error: %v", err)
	}
	if got != player {
		t.Error("Single() returned a different entity")
	}

	s.Spawn("Player 2", KindPlayer, Vec3{}, nil)
	if _, err := s.Single(KindPlayer); !errors.Is(err, ErrMissingSingleton) {
		t.Errorf("Single() with two players error = %v, want ErrMissingSingleton", err)
	}
}

func TestSceneSpawnAssignsIDs(t *testing.T) {
	s := NewScene()
	a := s.Spawn("A", KindEnemy, Vec3{}, nil)
	b := s.Spawn("B", KindEnemy, Vec3{}, nil)

	if a.ID == b.ID {
		t.Error("spawned entities share an ID")
	}
	if got, ok := s.Get(b.ID); !ok || got != b {
		t.Error("Get() did not return the spawned entity")
	}
	if !a.Visible {
		t.Error("spawned entities should start visible")
	}
}

func TestSceneDespawnRecursive(t *testing.T) {
	s := NewScene()
	root := s.Spawn("Enemy", KindEnemy, Vec3{}, nil)
	child := s.Spawn("Shadow", KindBackground, Vec3{}, nil)
	grandchild := s.Spawn("Glint", KindBackground, Vec3{}, nil)
	other := s.Spawn("Player", KindPlayer, Vec3{}, nil)

	s.AddChild(root, child)
	s.AddChild(child, grandchild)

	if got := s.DespawnRecursive(root); got != 3 {
		t.Errorf("DespawnRecursive() = %d, want 3", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if _, ok := s.Get(other.ID); !ok {
		t.Error("unrelated entity was despawned")
	}
	if _, ok := s.Get(grandchild.ID); ok {
		t.Error("grandchild survived despawn")
	}
	if got := s.DespawnRecursive(root); got != 0 {
		t.Errorf("second DespawnRecursive() = %d, want 0", got)
	}
}

func TestSceneDespawnChildDetaches(t *testing.T) {
	s := NewScene()
	parent := s.Spawn("Player", KindPlayer, Vec3{}, nil)
	child := s.Spawn("Background", KindBackground, Vec3{}, nil)
	s.AddChild(parent, child)

	s.DespawnRecursive(child)

	if len(parent.Children()) != 0 {
		t.Errorf("parent still has %d children", len(parent.Children()))
	}
}

func TestWorldTransformAndVisibility(t *testing.T) {
	s := NewScene()
	parent := s.Spawn("Player", KindPlayer, Vec3{X: 1, Y: 2, Z: 9}, &Sprite{Index: 1})
	child := s.Spawn("Background", KindBackground, Vec3{Z: -1}, &Sprite{Index: 0})
	s.AddChild(parent, child)

	if got := child.WorldTransform(); got != (Vec3{X: 1, Y: 2, Z: 8}) {
		t.Errorf("WorldTransform() = %+v, want {1 2 8}", got)
	}

	parent.Visible = false
	if child.IsVisible() {
		t.Error("child of a hidden parent should be hidden")
	}
	if got := len(s.Drawables()); got != 0 {
		t.Errorf("len(Drawables()) = %d, want 0", got)
	}

	parent.Visible = true
	drawables := s.Drawables()
	if len(drawables) != 2 {
		t.Fatalf("len(Drawables()) = %d, want 2", len(drawables))
	}
	if drawables[0] != child || drawables[1] != parent {
		t.Error("Drawables() should be ordered by depth")
	}
}

func TestPlayerPosition(t *testing.T) {
	s := NewScene()
	p := NewPlayer(s.Spawn("Player", KindPlayer, Vec3{X: 0.2, Y: -0.2, Z: 9}, nil), 3, 5)

	p.MoveTo(0.5, -0.1)
	x, y := p.Position()
	if x != 0.5 || y != -0.1 {
		t.Errorf("Position() = (%v, %v), want (0.5, -0.1)", x, y)
	}
	if p.Body.Transform.Z != 9 {
		t.Errorf("MoveTo() changed depth to %v", p.Body.Transform.Z)
	}
}

package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrMissingSingleton is wrapped by every MissingSingletonError.
var ErrMissingSingleton = errors.New("missing singleton")

// MissingSingletonError reports that exactly one of something was expected.
// It indicates a setup bug and is not recoverable.
type MissingSingletonError struct {
	What  string
	Count int
}

func (e *MissingSingletonError) Error() string {
	return fmt.Sprintf("expected exactly one %s, found %d", e.What, e.Count)
}

func (e *MissingSingletonError) Unwrap() error { return ErrMissingSingleton }

// Scene owns every live entity.
type Scene struct {
	entities map[uuid.UUID]*Entity
	order    []*Entity // Spawn order, for stable iteration
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{entities: make(map[uuid.UUID]*Entity)}
}

// Spawn creates a visible root entity.
func (s *Scene) Spawn(name string, kind Kind, at Vec3, sprite *Sprite) *Entity {
	e := &Entity{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Transform: at,
		Sprite:    sprite,
		Visible:   true,
	}
	s.entities[e.ID] = e
	s.order = append(s.order, e)
	return e
}

// AddChild attaches child under parent. A child that already has a parent is moved.
func (s *Scene) AddChild(parent, child *Entity) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = parent
	parent.children = append(parent.children, child)
}

func (e *Entity) removeChild(child *Entity) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Get returns the entity with the given ID.
func (s *Scene) Get(id uuid.UUID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// OfKind returns every entity of the given kind in spawn order.
func (s *Scene) OfKind(kind Kind) []*Entity {
	var result []*Entity
	for _, e := range s.order {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of entities of the given kind.
func (s *Scene) Count(kind Kind) int {
	return len(s.OfKind(kind))
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.order)
}

// Single returns the only entity of the given kind.
func (s *Scene) Single(kind Kind) (*Entity, error) {
	found := s.OfKind(kind)
	if len(found) != 1 {
		return nil, &MissingSingletonError{What: kind.String(), Count: len(found)}
	}
	return found[0], nil
}

// DespawnRecursive removes an entity and all its descendants.
// Returns the number of entities removed.
func (s *Scene) DespawnRecursive(e *Entity) int {
	if _, ok := s.Get(e.ID); !ok {
		return 0
	}

	removed := 0
	for _, c := range append([]*Entity(nil), e.children...) {
		removed += s.DespawnRecursive(c)
	}
	e.children = nil

	if e.parent != nil {
		e.parent.removeChild(e)
		e.parent = nil
	}
	delete(s.entities, e.ID)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return removed + 1
}

// Drawables returns visible entities with a sprite, ordered by world depth.
// Entities at equal depth keep spawn order.
func (s *Scene) Drawables() []*Entity {
	var result []*Entity
	for _, e := range s.order {
		if e.Sprite != nil && e.IsVisible() {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].WorldTransform().Z < result[j].WorldTransform().Z
	})
	return result
}

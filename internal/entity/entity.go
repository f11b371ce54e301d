package entity

import "github.com/google/uuid"

// Kind tags what an entity is for singleton lookups and despawning.
type Kind int

const (
	KindPlayer Kind = iota
	KindBackground
	KindCamera
	KindMap
	KindEnemy
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBackground:
		return "background"
	case KindCamera:
		return "camera"
	case KindMap:
		return "map"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Vec3 is a world-space position. Z orders drawing: higher is on top.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Color is a tint with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// RGB returns a color from its channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Sprite selects a cell of the sprite sheet and tints it.
type Sprite struct {
	Index int
	Tint  Color
}

// Entity is a named node in the scene. Transform is relative to the parent.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Kind      Kind
	Transform Vec3
	Sprite    *Sprite // nil for entities that are never drawn
	Visible   bool

	parent   *Entity
	children []*Entity
}

// Children returns the direct children.
func (e *Entity) Children() []*Entity {
	return e.children
}

// WorldTransform returns the transform after applying every ancestor.
func (e *Entity) WorldTransform() Vec3 {
	t := e.Transform
	for p := e.parent; p != nil; p = p.parent {
		t = t.Add(p.Transform)
	}
	return t
}

// IsVisible returns true if the entity and all its ancestors are visible.
func (e *Entity) IsVisible() bool {
	for n := e; n != nil; n = n.parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// Package world provides the fixed tile map the player explores.
package world

// Kind classifies a map tile.
type Kind int

const (
	// KindOpen is a walkable tile with no special behavior.
	KindOpen Kind = iota
	// KindSolid blocks player movement.
	KindSolid
	// KindEncounter is walkable and can trigger a combat encounter.
	KindEncounter
)

// Map source characters with a special meaning. Any other character is open.
const (
	RuneSolid     = '#'
	RuneEncounter = '~'
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindSolid:
		return "solid"
	case KindEncounter:
		return "encounter"
	default:
		return "unknown"
	}
}

// KindOf returns the tile kind for a map source character.
func KindOf(r rune) Kind {
	switch r {
	case RuneSolid:
		return KindSolid
	case RuneEncounter:
		return KindEncounter
	default:
		return KindOpen
	}
}

// Tile represents a single map cell. Tiles are immutable once the map is loaded.
type Tile struct {
	Col, Row int
	Kind     Kind
	Rune     rune // Source character, also used as the tile's sprite index
}

// IsSolid returns true if the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t.Kind == KindSolid
}

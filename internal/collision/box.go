// Package collision resolves player movement against solid map tiles.
package collision

import "math"

// PlayerScale is the player's box side relative to a tile. Slightly smaller
// than a tile so the player fits through one-tile gaps.
const PlayerScale = 0.9

// Box is an axis-aligned bounding box described by its center and half extents.
type Box struct {
	X, Y         float64 // Center
	HalfW, HalfH float64
}

// Square returns a box of the given side centered at (x, y).
func Square(x, y, side float64) Box {
	return Box{X: x, Y: y, HalfW: side / 2, HalfH: side / 2}
}

// Overlaps returns true if the two boxes intersect on both axes.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return math.Abs(b.X-other.X) < b.HalfW+other.HalfW &&
		math.Abs(b.Y-other.Y) < b.HalfH+other.HalfH
}

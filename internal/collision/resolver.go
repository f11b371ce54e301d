package collision

import "github.com/samdwyer/asciiquest/internal/world"

// CanOccupy returns true if a player centered at (x, y) overlaps no solid tile.
func CanOccupy(x, y float64, grid *world.Grid) bool {
	return !Touches(x, y, grid, world.KindSolid)
}

// Touches returns true if a player centered at (x, y) overlaps any tile of the
// given kind.
func Touches(x, y float64, grid *world.Grid, kind world.Kind) bool {
	player := Square(x, y, grid.TileSize*PlayerScale)

	var tiles []world.Tile
	if kind == world.KindSolid {
		tiles = grid.Solids()
	} else {
		tiles = grid.Tiles()
	}

	for _, t := range tiles {
		if t.Kind != kind {
			continue
		}
		tx, ty := grid.WorldPosition(t.Col, t.Row)
		if player.Overlaps(Square(tx, ty, grid.TileSize)) {
			return true
		}
	}
	return false
}

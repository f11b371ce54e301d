package world

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/telemetry"
)

// DefaultTileSize is the side of one tile in world units.
const DefaultTileSize = 0.1

//go:embed maps/overworld.txt
var overworld string

// ErrMapFormat is the sentinel wrapped by every MapFormatError.
var ErrMapFormat = errors.New("malformed map")

// MapFormatError reports a map source that cannot be turned into a grid.
type MapFormatError struct {
	Source string
	Reason string
}

func (e *MapFormatError) Error() string {
	return fmt.Sprintf("map %s: %s", e.Source, e.Reason)
}

func (e *MapFormatError) Unwrap() error { return ErrMapFormat }

// Grid is the loaded tile map.
type Grid struct {
	Width    int // Length of the longest row
	Height   int // Number of rows
	TileSize float64

	rows   [][]Tile
	solids []Tile
}

// DefaultMap returns the embedded overworld map source.
func DefaultMap() string {
	return overworld
}

// LoadDefault parses the embedded overworld map.
func LoadDefault(tileSize float64) (*Grid, error) {
	return parse("embedded:overworld", overworld, tileSize)
}

// Load parses a map from its text source.
// Rows are lines, columns are characters. Blank lines before the first and
// after the last non-blank row are dropped; rows of unequal length are kept
// as-is and the missing cells classify as open.
func Load(source string, tileSize float64) (*Grid, error) {
	return parse("inline", source, tileSize)
}

// LoadFile reads and parses a map from a plain-text file.
func LoadFile(ctx context.Context, path string, tileSize float64) (*Grid, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "map.load")
	defer span.End()

	content, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	g, err := parse(path, string(content), tileSize)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("map.path", path),
		attribute.Int("map.width", g.Width),
		attribute.Int("map.height", g.Height),
	)
	return g, nil
}

func parse(name, source string, tileSize float64) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %v", tileSize)
	}
	if source == "" {
		return nil, &MapFormatError{Source: name, Reason: "source is empty"}
	}

	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	// A final newline ends the last row rather than starting a new one.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	blank := true
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, &MapFormatError{Source: name, Reason: "every line is blank"}
	}

	g := &Grid{
		Height:   len(lines),
		TileSize: tileSize,
		rows:     make([][]Tile, len(lines)),
	}

	for row, line := range lines {
		runes := []rune(line)
		tiles := make([]Tile, len(runes))
		for col, r := range runes {
			tiles[col] = Tile{Col: col, Row: row, Kind: KindOf(r), Rune: r}
			if tiles[col].IsSolid() {
				g.solids = append(g.solids, tiles[col])
			}
		}
		g.rows[row] = tiles
		if len(tiles) > g.Width {
			g.Width = len(tiles)
		}
	}

	return g, nil
}

// Classify returns the kind of the tile at the given position.
// Positions outside the map, including the missing tail of a short row, are open.
func (g *Grid) Classify(col, row int) Kind {
	if t, ok := g.Tile(col, row); ok {
		return t.Kind
	}
	return KindOpen
}

// Tile returns the tile at the given position, if the source defined one.
func (g *Grid) Tile(col, row int) (Tile, bool) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return Tile{}, false
	}
	return g.rows[row][col], true
}

// WorldPosition returns the world-space center of a tile.
// Rows grow downward on screen, so y is negated.
func (g *Grid) WorldPosition(col, row int) (x, y float64) {
	return float64(col) * g.TileSize, -float64(row) * g.TileSize
}

// TileAt returns the tile coordinates nearest to a world position.
func (g *Grid) TileAt(x, y float64) (col, row int) {
	return int(math.Round(x / g.TileSize)), int(math.Round(-y / g.TileSize))
}

// Tiles returns every tile in source order (row by row).
func (g *Grid) Tiles() []Tile {
	all := make([]Tile, 0, g.Width*g.Height)
	for _, row := range g.rows {
		all = append(all, row...)
	}
	return all
}

// Solids returns the solid tiles. The slice must not be modified.
func (g *Grid) Solids() []Tile {
	return g.solids
}

package assets

import (
	"fmt"

	"github.com/samdwyer/asciiquest/internal/entity"
)

// Sprite names in sprites.json.
const (
	SpritePlayer     = "player"
	SpriteBackground = "background"
	SpriteTile       = "tile"
)

// Layout describes the grid of glyph cells in the sheet image.
type Layout struct {
	Image    string `json:"image"`
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	CellSize int    `json:"cellSize"`
	Padding  int    `json:"padding"`
}

// SpriteDef is one named sprite. An index below zero means "use the source
// character", which is how map tiles are drawn.
type SpriteDef struct {
	Index int    `json:"index"`
	Color string `json:"color"`
}

// SpritesFile represents the structure of sprites.json.
type SpritesFile struct {
	Sheet   Layout               `json:"sheet"`
	Sprites map[string]SpriteDef `json:"sprites"`
}

// Sheet is the loaded sprite sheet handle. Spawning anything drawable
// requires one.
type Sheet struct {
	Layout  Layout
	Enemies *EnemyRoster

	sprites map[string]entity.Sprite
}

// LoadSheet loads the embedded sprite table and enemy roster.
func LoadSheet() (*Sheet, error) {
	file, err := Load[SpritesFile]("sprites.json")
	if err != nil {
		return nil, err
	}
	roster, err := LoadEnemyRoster()
	if err != nil {
		return nil, err
	}
	return NewSheet(file, roster)
}

// NewSheet validates a sprite table and builds a sheet from it.
func NewSheet(file SpritesFile, roster *EnemyRoster) (*Sheet, error) {
	if file.Sheet.Columns <= 0 || file.Sheet.Rows <= 0 {
		return nil, fmt.Errorf("sheet %s has no cells", file.Sheet.Image)
	}

	sprites := make(map[string]entity.Sprite, len(file.Sprites))
	for name, def := range file.Sprites {
		tint, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", name, err)
		}
		if def.Index >= file.Sheet.Columns*file.Sheet.Rows {
			return nil, fmt.Errorf("sprite %s: index %d outside sheet", name, def.Index)
		}
		sprites[name] = entity.Sprite{Index: def.Index, Tint: tint}
	}

	return &Sheet{Layout: file.Sheet, Enemies: roster, sprites: sprites}, nil
}

// Sprite returns the named sprite.
func (s *Sheet) Sprite(name string) (entity.Sprite, error) {
	sp, ok := s.sprites[name]
	if !ok {
		return entity.Sprite{}, fmt.Errorf("unknown sprite %q", name)
	}
	return sp, nil
}

// TileSprite returns the sprite for a map tile drawn from its source character.
func (s *Sheet) TileSprite(r rune) entity.Sprite {
	sp := s.sprites[SpriteTile]
	if sp.Index < 0 {
		sp.Index = int(r)
	}
	return sp
}

// cp437 holds the non-ASCII glyphs of the sheet's low control-code cells.
var cp437 = map[int]rune{
	0: ' ',
	1: '☺',
	2: '☻',
	3: '♥',
	4: '♦',
	5: '♣',
	6: '♠',
	7: '•',
}

// Glyph returns the character drawn in a sheet cell. Indexes outside the
// sheet render as '?'.
func (s *Sheet) Glyph(index int) rune {
	if index < 0 || index >= s.Layout.Columns*s.Layout.Rows {
		return '?'
	}
	if r, ok := cp437[index]; ok {
		return r
	}
	if index < 32 || index == 127 {
		return '?'
	}
	return rune(index)
}

package assets

import (
	"errors"
	"math/rand"

	"github.com/samdwyer/asciiquest/internal/entity"
)

// EnemyDef describes how a combat enemy marker looks.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "bat")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character; its code is the sprite index
	Color       string `json:"color"`       // Hex tint
	SpawnWeight int    `json:"spawnWeight"` // Relative frequency (higher = more common)
}

// Sprite returns the sheet sprite for this enemy.
func (e *EnemyDef) Sprite() (entity.Sprite, error) {
	tint, err := ParseHexColor(e.Color)
	if err != nil {
		return entity.Sprite{}, err
	}
	index := int('?')
	if len(e.Glyph) > 0 {
		index = int([]rune(e.Glyph)[0])
	}
	return entity.Sprite{Index: index, Tint: tint}, nil
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// EnemyRoster holds the enemy definitions an encounter can show.
type EnemyRoster struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRoster creates a roster from enemy definitions.
func NewEnemyRoster(enemies []EnemyDef) *EnemyRoster {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRoster{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRoster loads the embedded enemies.json.
func LoadEnemyRoster() (*EnemyRoster, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRoster(file.Enemies), nil
}

// SpawnRandom selects an enemy definition using weighted probability.
func (r *EnemyRoster) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// Count returns the number of enemy definitions.
func (r *EnemyRoster) Count() int {
	return len(r.enemies)
}

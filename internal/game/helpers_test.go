package game

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/samdwyer/asciiquest/internal/assets"
	"github.com/samdwyer/asciiquest/internal/world"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func mustGrid(t *testing.T, source string, tileSize float64) *world.Grid {
	t.Helper()
	g, err := world.Load(source, tileSize)
	if err != nil {
		t.Fatalf("world.Load() error: %v", err)
	}
	return g
}

func mustSheet(t *testing.T) *assets.Sheet {
	t.Helper()
	sheet, err := assets.LoadSheet()
	if err != nil {
		t.Fatalf("assets.LoadSheet() error: %v", err)
	}
	return sheet
}

func testOptions(col, row int) Options {
	return Options{
		Variant:           VariantExplore,
		PlayerSpeed:       3,
		SpawnCol:          col,
		SpawnRow:          row,
		EncounterInterval: time.Second,
		Gravity:           9.8,
		JumpStrength:      5,
		Seed:              1,
	}
}

func newTestSimulation(t *testing.T, source string, tileSize float64, opts Options) *Simulation {
	t.Helper()
	s, err := NewSimulation(context.Background(), mustGrid(t, source, tileSize), mustSheet(t), opts)
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	return s
}

package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/assets"
	"github.com/samdwyer/asciiquest/internal/config"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Draw depths.
const (
	playerDepth     = 9.0
	backgroundDepth = -1.0 // Relative to the player
)

// Options configures a Simulation.
type Options struct {
	Variant           Variant
	PlayerSpeed       float64 // Tiles per second
	SpawnCol          int
	SpawnRow          int
	EncounterInterval time.Duration
	Gravity           float64 // Tiles per second squared
	JumpStrength      float64 // Tiles per second

	// Seed for the enemy roster. 0 means seed from the clock.
	Seed int64
}

// OptionsFromConfig converts loaded configuration to simulation options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	variant, err := ParseVariant(cfg.Variant)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Variant:           variant,
		PlayerSpeed:       cfg.PlayerSpeed,
		SpawnCol:          cfg.SpawnCol,
		SpawnRow:          cfg.SpawnRow,
		EncounterInterval: cfg.EncounterInterval,
		Gravity:           cfg.Gravity,
		JumpStrength:      cfg.JumpStrength,
		Seed:              cfg.Seed,
	}, nil
}

// Simulation owns all game state and advances it one frame at a time.
// It is not safe for concurrent use.
type Simulation struct {
	grid  *world.Grid
	sheet *assets.Sheet
	scene *entity.Scene

	player  *entity.Player
	camera  *entity.Entity
	mapRoot *entity.Entity

	modes      *ModeMachine
	controller *PlayerController
	encounters *EncounterSystem
	rng        *rand.Rand
}

// NewSimulation spawns the camera, map and player, wires the mode hooks and
// enters exploration. The sprite sheet must already be loaded.
func NewSimulation(ctx context.Context, grid *world.Grid, sheet *assets.Sheet, opts Options) (*Simulation, error) {
	if grid == nil {
		return nil, &entity.MissingSingletonError{What: "map", Count: 0}
	}
	if sheet == nil {
		return nil, &entity.MissingSingletonError{What: "sprite sheet", Count: 0}
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		grid:  grid,
		sheet: sheet,
		scene: entity.NewScene(),
		modes: NewModeMachine(ModeExploration),
		controller: &PlayerController{
			Grid:    grid,
			Variant: opts.Variant,
			Gravity: opts.Gravity,
		},
		encounters: &EncounterSystem{
			Grid:  grid,
			Clock: NewEncounterClock(opts.EncounterInterval),
		},
		rng: rand.New(rand.NewSource(seed)),
	}

	s.camera = s.scene.Spawn("Camera", entity.KindCamera, entity.Vec3{}, nil)
	s.mapRoot = s.scene.Spawn("Map", entity.KindMap, entity.Vec3{}, nil)
	if err := s.spawnPlayer(opts); err != nil {
		return nil, err
	}

	s.registerExploration()
	s.registerCombat()

	if err := s.modes.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting %s: %w", s.modes.Current(), err)
	}

	span.SetAttributes(
		attribute.Int("map.width", grid.Width),
		attribute.Int("map.height", grid.Height),
		attribute.Int("player.spawn_col", opts.SpawnCol),
		attribute.Int("player.spawn_row", opts.SpawnRow),
		attribute.String("variant", opts.Variant.String()),
		attribute.Int("scene.entities", s.scene.Len()),
	)
	return s, nil
}

func (s *Simulation) spawnPlayer(opts Options) error {
	body, err := s.sheet.Sprite(assets.SpritePlayer)
	if err != nil {
		return err
	}
	bg, err := s.sheet.Sprite(assets.SpriteBackground)
	if err != nil {
		return err
	}

	x, y := s.grid.WorldPosition(opts.SpawnCol, opts.SpawnRow)
	player := s.scene.Spawn("Player", entity.KindPlayer, entity.Vec3{X: x, Y: y, Z: playerDepth}, &body)
	background := s.scene.Spawn("Background", entity.KindBackground, entity.Vec3{Z: backgroundDepth}, &bg)
	s.scene.AddChild(player, background)

	s.player = entity.NewPlayer(player, opts.PlayerSpeed, opts.JumpStrength)
	followCamera(s.camera, s.player)
	return nil
}

// registerExploration wires player and map visibility to the exploration mode.
func (s *Simulation) registerExploration() {
	s.modes.OnEnter(ModeExploration, s.setVisible(entity.KindPlayer, true))
	s.modes.OnEnter(ModeExploration, s.setVisible(entity.KindMap, true))
	s.modes.OnExit(ModeExploration, s.setVisible(entity.KindPlayer, false))
	s.modes.OnExit(ModeExploration, s.setVisible(entity.KindMap, false))
}

func (s *Simulation) setVisible(kind entity.Kind, visible bool) Hook {
	return func(context.Context) error {
		e, err := s.scene.Single(kind)
		if err != nil {
			return err
		}
		e.Visible = visible
		return nil
	}
}

// Step advances the simulation by one frame.
// Movement runs before the encounter check and the camera, which both read
// the post-movement position. Only fatal errors are returned.
func (s *Simulation) Step(ctx context.Context, keys Keys, dt time.Duration) error {
	switch s.modes.Current() {
	case ModeExploration:
		s.controller.Update(s.player, keys, dt)
		if err := s.encounters.Update(ctx, s.player, dt, s.modes); err != nil {
			return err
		}
		if s.modes.Current() == ModeExploration {
			followCamera(s.camera, s.player)
		}
	case ModeCombat:
		return s.retreat(ctx, keys)
	}
	return nil
}

// Mode returns the current application mode.
func (s *Simulation) Mode() Mode {
	return s.modes.Current()
}

// Player returns the player state.
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Clock returns the encounter clock.
func (s *Simulation) Clock() *EncounterClock {
	return s.encounters.Clock
}

// Scene returns the live entities.
func (s *Simulation) Scene() *entity.Scene {
	return s.scene
}

// Grid returns the loaded map.
func (s *Simulation) Grid() *world.Grid {
	return s.grid
}

// Sheet returns the sprite sheet.
func (s *Simulation) Sheet() *assets.Sheet {
	return s.sheet
}

// Camera returns the camera's world position.
func (s *Simulation) Camera() entity.Vec3 {
	return s.camera.Transform
}

// MapVisible returns true while the map should be drawn.
func (s *Simulation) MapVisible() bool {
	return s.mapRoot.Visible
}

// Drawables returns the visible entities in draw order.
func (s *Simulation) Drawables() []*entity.Entity {
	return s.scene.Drawables()
}

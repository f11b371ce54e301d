package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/input"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
)

// enemyOffset is where the enemy marker appears on the combat screen.
var enemyOffset = entity.Vec3{X: 0, Y: 0.5, Z: 9}

// fallbackEnemy is shown when the roster has nothing to offer.
var fallbackEnemy = entity.Sprite{Index: 'b', Tint: entity.RGB(0.8, 0.8, 0.8)}

// registerCombat wires the combat enter/exit hooks.
func (s *Simulation) registerCombat() {
	s.modes.OnEnter(ModeCombat, s.spawnEnemy)
	s.modes.OnEnter(ModeCombat, s.combatCamera)
	s.modes.OnEnter(ModeCombat, func(context.Context) error {
		s.encounters.Clock.Reset()
		return nil
	})
	s.modes.OnExit(ModeCombat, s.despawnEnemies)
}

// spawnEnemy places the cosmetic enemy marker on the combat screen.
func (s *Simulation) spawnEnemy(ctx context.Context) error {
	if s.sheet == nil {
		return &entity.MissingSingletonError{What: "sprite sheet", Count: 0}
	}

	sprite := fallbackEnemy
	name := "Enemy"
	if s.sheet.Enemies != nil {
		if def := s.sheet.Enemies.SpawnRandom(s.rng); def != nil {
			sp, err := def.Sprite()
			if err != nil {
				return err
			}
			sprite = sp
			name = def.Name
		}
	}

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.start")
	span.SetAttributes(attribute.String("enemy", name))
	span.End()

	s.scene.Spawn(name, entity.KindEnemy, enemyOffset, &sprite)
	return nil
}

func (s *Simulation) combatCamera(context.Context) error {
	camera, err := s.scene.Single(entity.KindCamera)
	if err != nil {
		return err
	}
	centerCamera(camera)
	return nil
}

// despawnEnemies removes every enemy marker and anything attached to it.
func (s *Simulation) despawnEnemies(ctx context.Context) error {
	removed := 0
	for _, e := range s.scene.OfKind(entity.KindEnemy) {
		removed += s.scene.DespawnRecursive(e)
	}

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.Int("entities_removed", removed),
		attribute.Int("entities_remaining", s.scene.Len()),
	)
	span.End()
	return nil
}

// retreat returns to exploration when the exit key goes down. The key state
// is cleared so the same press does not leak into exploration.
func (s *Simulation) retreat(ctx context.Context, keys Keys) error {
	if !keys.JustPressed(input.ActionExit) {
		return nil
	}

	logger.Component("combat").Info("retreating to exploration")
	if err := s.modes.Request(ctx, ModeExploration); err != nil {
		return err
	}
	keys.Clear()
	return nil
}

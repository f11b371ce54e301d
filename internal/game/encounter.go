package game

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/world"
)

// EncounterClock accumulates qualifying dwell time toward the next encounter.
// It repeats: firing resets it to zero.
type EncounterClock struct {
	Elapsed  time.Duration
	Interval time.Duration
}

// NewEncounterClock creates a clock that fires every interval.
func NewEncounterClock(interval time.Duration) *EncounterClock {
	return &EncounterClock{Interval: interval}
}

// Tick advances the clock and reports whether it fired.
func (c *EncounterClock) Tick(dt time.Duration) bool {
	c.Elapsed += dt
	if c.Elapsed < c.Interval {
		return false
	}
	c.Elapsed = 0
	return true
}

// Reset rewinds the clock to zero.
func (c *EncounterClock) Reset() {
	c.Elapsed = 0
}

// EncounterSystem starts combat after the player has kept moving on
// encounter tiles for a full clock interval.
//
// The clock only advances on frames where the player moved and stands on an
// encounter tile. Other frames leave it untouched rather than resetting it.
type EncounterSystem struct {
	Grid  *world.Grid
	Clock *EncounterClock
}

// Update runs the encounter check for one frame.
func (s *EncounterSystem) Update(ctx context.Context, p *entity.Player, dt time.Duration, modes *ModeMachine) error {
	if modes.Current() != ModeExploration || !p.JustMoved {
		return nil
	}

	col, row := s.Grid.TileAt(p.Position())
	if s.Grid.Classify(col, row) != world.KindEncounter {
		return nil
	}

	if !s.Clock.Tick(dt) {
		return nil
	}

	ctx, span := telemetry.Tracer("encounter").Start(ctx, "encounter.trigger")
	defer span.End()
	span.SetAttributes(
		attribute.Int("tile.col", col),
		attribute.Int("tile.row", row),
	)

	logger.Component("encounter").WithField("col", col).WithField("row", row).
		Info("encounter triggered")

	err := modes.Request(ctx, ModeCombat)
	if errors.Is(err, ErrInvalidTransition) {
		logger.Component("encounter").WithError(err).Debug("transition ignored")
		return nil
	}
	return err
}

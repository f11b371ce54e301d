package game

import (
	"fmt"
	"time"

	"github.com/samdwyer/asciiquest/internal/collision"
	"github.com/samdwyer/asciiquest/internal/config"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/input"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Variant selects how the player moves.
type Variant int

const (
	// VariantExplore is top-down movement on both axes.
	VariantExplore Variant = iota
	// VariantPlatformer adds gravity and jumping; up/down keys are ignored.
	VariantPlatformer
)

// String returns the variant's configuration name.
func (v Variant) String() string {
	switch v {
	case VariantExplore:
		return config.VariantExplore
	case VariantPlatformer:
		return config.VariantPlatformer
	default:
		return "unknown"
	}
}

// ParseVariant converts a configuration name to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case config.VariantExplore:
		return VariantExplore, nil
	case config.VariantPlatformer:
		return VariantPlatformer, nil
	default:
		return VariantExplore, fmt.Errorf("unknown variant %q", name)
	}
}

// Keys is the per-frame input state read by the systems.
type Keys interface {
	Pressed(a input.Action) bool
	JustPressed(a input.Action) bool
	Clear()
}

// PlayerController turns key input into player displacement.
// X is resolved and committed before Y is tested from the updated position,
// so the player slides along a wall that blocks only one axis.
type PlayerController struct {
	Grid    *world.Grid
	Variant Variant
	Gravity float64 // Tiles per second squared, platformer only
}

// Update moves the player for one frame.
func (c *PlayerController) Update(p *entity.Player, keys Keys, dt time.Duration) {
	if c.Variant == VariantPlatformer {
		c.platform(p, keys, dt)
		return
	}
	c.walk(p, keys, dt)
}

func (c *PlayerController) walk(p *entity.Player, keys Keys, dt time.Duration) {
	p.JustMoved = false

	step := p.Speed * c.Grid.TileSize * dt.Seconds()
	dy := axisDelta(keys, input.ActionDown, input.ActionUp, step)
	dx := axisDelta(keys, input.ActionLeft, input.ActionRight, step)

	if dx == 0 && dy == 0 {
		return
	}

	// Bumping into a wall still counts as moving for encounters.
	p.JustMoved = true

	c.shift(p, dx, 0)
	c.shift(p, 0, dy)
}

func (c *PlayerController) platform(p *entity.Player, keys Keys, dt time.Duration) {
	secs := dt.Seconds()
	ts := c.Grid.TileSize

	dx := axisDelta(keys, input.ActionLeft, input.ActionRight, p.Speed*ts*secs)

	jumped := false
	if keys.Pressed(input.ActionJump) && p.Grounded {
		p.VelocityY += p.JumpStrength * ts
		jumped = true
	}
	p.VelocityY -= c.Gravity * ts * secs

	p.JustMoved = dx != 0 || jumped

	if dx != 0 {
		c.shift(p, dx, 0)
	}

	// Any vertical obstruction, floor or ceiling, stops the player and
	// counts as ground.
	if c.shift(p, 0, p.VelocityY*secs) {
		p.Grounded = false
	} else {
		p.VelocityY = 0
		p.Grounded = true
	}
}

// shift commits a displacement if the target is free and reports whether it did.
func (c *PlayerController) shift(p *entity.Player, dx, dy float64) bool {
	x, y := p.Position()
	if !collision.CanOccupy(x+dx, y+dy, c.Grid) {
		return false
	}
	p.MoveTo(x+dx, y+dy)
	return true
}

// axisDelta sums opposing keys. Diagonals are not normalized.
func axisDelta(keys Keys, negative, positive input.Action, step float64) float64 {
	delta := 0.0
	if keys.Pressed(positive) {
		delta += step
	}
	if keys.Pressed(negative) {
		delta -= step
	}
	return delta
}

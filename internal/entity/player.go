// Package entity provides the player and the transient entities drawn on screen.
package entity

// Player holds the single player's movement state. Its position lives on the
// Body entity so the renderer and the camera see the same transform.
type Player struct {
	Body *Entity

	Speed     float64 // Tiles per second
	JustMoved bool    // True only on frames where a move was attempted

	// Platformer variant
	VelocityY    float64 // World units per second, positive is up
	Grounded     bool
	JumpStrength float64 // Tiles per second added on jump
}

// NewPlayer creates player state attached to the given body entity.
func NewPlayer(body *Entity, speed, jumpStrength float64) *Player {
	return &Player{
		Body:         body,
		Speed:        speed,
		JumpStrength: jumpStrength,
	}
}

// Position returns the current world x, y coordinates.
func (p *Player) Position() (float64, float64) {
	return p.Body.Transform.X, p.Body.Transform.Y
}

// MoveTo sets the world x, y coordinates. Depth is left untouched.
func (p *Player) MoveTo(x, y float64) {
	p.Body.Transform.X = x
	p.Body.Transform.Y = y
}

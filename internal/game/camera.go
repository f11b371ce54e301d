package game

import "github.com/samdwyer/asciiquest/internal/entity"

// followCamera copies the player's world X/Y to the camera. Depth is kept.
func followCamera(camera *entity.Entity, p *entity.Player) {
	camera.Transform.X, camera.Transform.Y = p.Position()
}

// centerCamera points the camera at the world origin. Combat screens do not scroll.
func centerCamera(camera *entity.Entity) {
	camera.Transform.X = 0
	camera.Transform.Y = 0
}

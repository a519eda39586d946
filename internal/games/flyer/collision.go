package flyer

import "github.com/vovakirdan/tui-flyer/internal/core"

// CheckCollision tests the player's sphere against every obstacle sphere.
func CheckCollision(player core.Entity, obstacles []Obstacle) bool {
	_, hit := FirstHit(player, obstacles)
	return hit
}

// FirstHit returns the first obstacle, in field order, that overlaps the
// player. Touching spheres do not count.
func FirstHit(player core.Entity, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if player.Intersects(o.Entity()) {
			return o, true
		}
	}
	return Obstacle{}, false
}

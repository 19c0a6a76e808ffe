package runner

import "github.com/vovakirdan/neonrun/internal/core"

// Collide tests the player box against obstacles in arrival order and
// returns the first one it overlaps. Edge contact is not a hit.
func Collide(player core.RectF, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if player.Overlaps(o.Rect()) {
			return o, true
		}
	}
	return Obstacle{}, false
}

package flappy

import "github.com/vovakirdan/ocean-run/internal/core"

// Collides reports whether the actor hits the floor or any obstacle wall.
// The ceiling is handled by Actor.ClampCeiling and never collides.
func Collides(a Actor, obstacles []Obstacle, groundY float64) bool {
	if a.Y+a.R > groundY {
		return true
	}

	c := a.Circle()
	for _, o := range obstacles {
		if core.CircleIntersectsRect(c, o.TopRect()) {
			return true
		}
		if core.CircleIntersectsRect(c, o.BottomRect(groundY)) {
			return true
		}
	}
	return false
}

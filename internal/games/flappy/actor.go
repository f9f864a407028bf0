package flappy

import "github.com/vovakirdan/ocean-run/internal/core"

// Actor is the player entity. X is fixed after initialization; the world
// scrolls past it.
type Actor struct {
	X  float64 // Center x, constant during a run
	Y  float64 // Center y, grows downward
	R  float64 // Collision radius
	VY float64 // Vertical velocity, negative is up
}

// ApplyImpulse sets the vertical velocity. Repeated calls each reset it.
func (a *Actor) ApplyImpulse(v float64) {
	a.VY = v
}

// Integrate advances the actor by dt seconds under constant gravity.
// Position uses the mean of the old and new velocity, which is exact for
// constant acceleration: after n steps y = y0 + vy0*T + g*T²/2.
func (a *Actor) Integrate(dt, gravity float64) {
	v0 := a.VY
	a.VY += gravity * dt
	a.Y += (v0 + a.VY) * 0.5 * dt
}

// ClampCeiling pins the actor below the top edge and zeroes its velocity.
// Touching the ceiling is not a collision. Reports whether it clamped.
func (a *Actor) ClampCeiling() bool {
	if a.Y-a.R < 0 {
		a.Y = a.R
		a.VY = 0
		return true
	}
	return false
}

// Circle returns the actor's collision shape.
func (a Actor) Circle() core.Circle {
	return core.Circle{X: a.X, Y: a.Y, R: a.R}
}

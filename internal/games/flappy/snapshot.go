package flappy

import "slices"

// Snapshot is a read-only copy of the simulation state handed to the render
// layer once per tick. Mutating it has no effect on the game.
type Snapshot struct {
	State     RunState
	Actor     Actor
	Obstacles []Obstacle
	Bubbles   []Bubble
	Score     int
	Best      int
	Factor    float64 // Current scroll speed multiplier
	Elapsed   float64 // Simulated seconds of the current run

	WorldW  float64
	WorldH  float64
	GroundY float64
}

// Snapshot returns the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Actor:     g.actor,
		Obstacles: slices.Clone(g.field.Obstacles()),
		Bubbles:   slices.Clone(g.bubbles.items),
		Score:     g.score,
		Best:      g.Best(),
		Factor:    g.difficulty.Factor(g.score),
		Elapsed:   g.elapsed,
		WorldW:    g.tuning.World.Width,
		WorldH:    g.tuning.World.Height,
		GroundY:   g.groundY,
	}
}

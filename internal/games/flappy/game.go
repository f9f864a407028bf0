// Package flappy implements Ocean Run, a flappy-style game: a dolphin falls
// under gravity, flaps upward on input, and must swim through the gaps of a
// scrolling coral field.
//
// Game is the explicit context for one play session. It owns the actor, the
// obstacle field, the score and the run state, and advances them in a fixed
// order each tick. It performs no I/O; best-score persistence goes through
// the BestScorer it is given.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/ocean-run/internal/config"
	"github.com/vovakirdan/ocean-run/internal/core"
)

// BestScorer reconciles the persisted best score when a run ends.
type BestScorer interface {
	// Best returns the current best score.
	Best() int
	// Reconcile records score if it beats the best. It must not block.
	Reconcile(score int) bool
}

// Game holds the complete state of one play session.
type Game struct {
	tuning     config.Tuning
	difficulty *config.Difficulty
	best       BestScorer
	config     core.RuntimeConfig

	state   RunState
	actor   Actor
	field   *Field
	bubbles *Bubbles
	score   int
	elapsed float64 // Simulated seconds in RUNNING
	ticks   int     // Advance calls in RUNNING

	// Derived from tuning and density once per New
	groundY     float64
	gravity     float64
	flapImpulse float64
	scrollSpeed float64
	spacing     float64
	maxStep     float64
}

// New validates the tuning and creates a game in the IDLE state.
// best may be nil, in which case nothing is persisted.
func New(t config.Tuning, best BestScorer) (*Game, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	d := t.Density()
	diff := config.NewDifficulty(t)
	g := &Game{
		tuning:      t,
		difficulty:  diff,
		best:        best,
		config:      core.DefaultConfig(),
		groundY:     t.GroundY(),
		gravity:     t.Physics.Gravity * d,
		flapImpulse: t.Physics.FlapImpulse * d,
		scrollSpeed: t.Physics.ScrollSpeed * d,
		spacing:     t.Obstacles.Spacing * d,
		maxStep:     t.Physics.MaxStep,
	}
	g.field = NewField(t, diff, 0)
	g.bubbles = newBubbles(1, d)
	g.reset()
	return g, nil
}

// ID returns the identifier used for files and log fields.
func (g *Game) ID() string {
	return "oceanrun"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ocean Run"
}

// Reset reseeds the random sources from cfg and reinitializes the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.field.Reseed(cfg.Seed)
	g.bubbles = newBubbles(cfg.Seed+1, g.tuning.Density())
	g.reset()
}

// reset reinitializes actor, obstacle field and score and enters IDLE.
// The random sources continue, so consecutive runs get fresh geometry.
func (g *Game) reset() {
	w, h := g.tuning.World.Width, g.tuning.World.Height

	g.state = StateIdle
	g.score = 0
	g.elapsed = 0
	g.ticks = 0
	g.actor = Actor{
		X:  w * g.tuning.Actor.XRatio,
		Y:  h * g.tuning.Actor.YRatio,
		R:  g.tuning.Actor.Radius * g.tuning.Density(),
		VY: 0,
	}
	g.field.SpawnInitial(w, g.spacing, g.tuning.Obstacles.Count, 0)
	g.bubbles.Clear()
}

// Flap applies the upward impulse. The first flap in IDLE starts the run.
// Flaps after the run ended are ignored. Reports whether it was applied.
func (g *Game) Flap() bool {
	switch g.state {
	case StateIdle:
		g.state = StateRunning
	case StateRunning:
	default:
		return false
	}

	g.actor.ApplyImpulse(g.flapImpulse)
	g.bubbles.Burst(g.actor.X, g.actor.Y)
	return true
}

// Restart returns an ended run to IDLE with a fresh field and zero score.
// It is a no-op in any other state. The best score is kept.
func (g *Game) Restart() bool {
	if g.state != StateEnded {
		return false
	}
	g.reset()
	return true
}

// Apply dispatches the commands collected in an input frame.
func (g *Game) Apply(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionFlap) {
		g.Flap()
	}
}

// Advance moves the simulation forward by dt seconds.
// dt is clamped to [0, max_step]; ended runs do not advance.
func (g *Game) Advance(dt float64) {
	if g.state == StateEnded {
		return
	}
	dt = core.ClampF(dt, 0, g.maxStep)

	g.bubbles.Update(dt)
	if g.state != StateRunning {
		return
	}

	g.elapsed += dt
	g.ticks++

	// Obstacle field
	speed := g.scrollSpeed * g.difficulty.Factor(g.score)
	g.field.Advance(dt, speed)
	g.field.Recycle(g.spacing, g.score)

	// Actor physics
	g.actor.Integrate(dt, g.gravity)
	g.actor.ClampCeiling()

	// Scoring
	g.score += ScoreTick(g.actor, g.field.Obstacles(), g.tuning.Scoring.Boundary)

	// Collision
	if Collides(g.actor, g.field.Obstacles(), g.groundY) {
		g.end()
	}
}

// end freezes the run and reconciles the best score once.
func (g *Game) end() {
	g.state = StateEnded
	if g.best != nil {
		g.best.Reconcile(g.score)
	}
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.state
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score known to the BestScorer.
func (g *Game) Best() int {
	if g.best == nil {
		return g.score
	}
	return max(g.best.Best(), g.score)
}

// Tuning returns the tuning the game was created with.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}

// String summarizes the session for logs.
func (g *Game) String() string {
	return fmt.Sprintf("%s score=%d ticks=%d elapsed=%.2fs", g.state, g.score, g.ticks, g.elapsed)
}

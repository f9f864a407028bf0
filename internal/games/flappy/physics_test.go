package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/ocean-run/internal/config"
)

func TestIntegrateMatchesClosedForm(t *testing.T) {
	const (
		worldH  = 800.0
		gravity = 1650.0
		dt      = 0.016
		steps   = 100
	)

	a := Actor{X: 358.4, Y: 0.45 * worldH, R: 18}
	a.ApplyImpulse(config.DefaultTuning().Physics.FlapImpulse)

	y0, vy0 := a.Y, a.VY
	if vy0 != -640 {
		t.Fatalf("impulse = %v, expected -640", vy0)
	}

	for i := 0; i < steps; i++ {
		a.Integrate(dt, gravity)
	}

	T := steps * dt
	want := y0 + vy0*T + 0.5*gravity*T*T
	if math.Abs(a.Y-want) > 1e-6 {
		t.Errorf("y after %d steps = %.9f, expected %.9f", steps, a.Y, want)
	}
	if wantV := vy0 + gravity*T; math.Abs(a.VY-wantV) > 1e-9 {
		t.Errorf("vy = %v, expected %v", a.VY, wantV)
	}
}

func TestGravityPullsDown(t *testing.T) {
	a := Actor{Y: 100}
	a.Integrate(0.016, 1650)

	if a.Y <= 100 {
		t.Errorf("gravity should pull the actor down, y = %v", a.Y)
	}
	if a.VY <= 0 {
		t.Errorf("velocity should be positive after gravity, got %v", a.VY)
	}
}

func TestClampCeiling(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		clamped bool
	}{
		{"above ceiling", Actor{Y: 5, R: 18, VY: -300}, true},
		{"exactly touching", Actor{Y: 18, R: 18, VY: -300}, false},
		{"well below", Actor{Y: 200, R: 18, VY: -300}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.actor
			if got := a.ClampCeiling(); got != tc.clamped {
				t.Fatalf("ClampCeiling() = %v, expected %v", got, tc.clamped)
			}
			if tc.clamped && (a.Y != a.R || a.VY != 0) {
				t.Errorf("clamped actor should sit at y=r with vy=0, got %+v", a)
			}
			if !tc.clamped && a != tc.actor {
				t.Errorf("unclamped actor should be unchanged, got %+v", a)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	const groundY = 730.0
	wall := Obstacle{X: 400, W: 74, Gap: 200, TopH: 200}

	tests := []struct {
		name     string
		actor    Actor
		expected bool
	}{
		{"in gap", Actor{X: 437, Y: 300, R: 18}, false},
		{"into top wall", Actor{X: 437, Y: 210, R: 18}, true},
		{"into bottom wall", Actor{X: 437, Y: 390, R: 18}, true},
		{"center inside top wall", Actor{X: 437, Y: 100, R: 18}, true},
		{"left of obstacle", Actor{X: 300, Y: 100, R: 18}, false},
		{"below ground", Actor{X: 100, Y: 713, R: 18}, true},
		{"resting on ground", Actor{X: 100, Y: 712, R: 18}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.actor, []Obstacle{wall}, groundY); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesObstacleToTheRight(t *testing.T) {
	// Fully right with no vertical overlap between circle and either wall
	o := Obstacle{X: 600, W: 74, Gap: 300, TopH: 100}
	a := Actor{X: 358, Y: 250, R: 18}
	if Collides(a, []Obstacle{o}, 730) {
		t.Error("obstacle fully to the right should not collide")
	}
}

func TestScoreTickOncePerObstacle(t *testing.T) {
	a := Actor{X: 358.4, Y: 300, R: 18}
	obs := []Obstacle{
		{X: 200, W: 74}, // trailing 274, passed
		{X: 300, W: 74}, // trailing 374, overlapping the actor
		{X: 600, W: 74},
	}

	if got := ScoreTick(a, obs, config.BoundaryLeadingEdge); got != 1 {
		t.Fatalf("first ScoreTick awarded %d, expected 1", got)
	}
	if !obs[0].Scored || obs[1].Scored || obs[2].Scored {
		t.Errorf("unexpected scored flags: %+v", obs)
	}
	if got := ScoreTick(a, obs, config.BoundaryLeadingEdge); got != 0 {
		t.Errorf("second ScoreTick awarded %d, an obstacle must score once", got)
	}
}

func TestScoreBoundary(t *testing.T) {
	a := Actor{X: 358.4, R: 18}
	// Trailing edge 350: past the center line but not the leading edge.
	obs := []Obstacle{{X: 276, W: 74}}

	if got := ScoreTick(a, slicesCopy(obs), config.BoundaryLeadingEdge); got != 0 {
		t.Errorf("leading_edge boundary awarded %d, expected 0", got)
	}
	if got := ScoreTick(a, slicesCopy(obs), config.BoundaryCenter); got != 1 {
		t.Errorf("center boundary awarded %d, expected 1", got)
	}
}

func slicesCopy(in []Obstacle) []Obstacle {
	return append([]Obstacle(nil), in...)
}

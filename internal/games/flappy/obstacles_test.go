package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ocean-run/internal/config"
)

func newTestField(t *testing.T, cfg config.Tuning, seed int64) *Field {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid tuning: %v", err)
	}
	return NewField(cfg, config.NewDifficulty(cfg), seed)
}

func TestSpawnInitialPositions(t *testing.T) {
	f := newTestField(t, config.DefaultTuning(), 1)
	f.SpawnInitial(1280, 300, 5, 0)

	if f.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", f.Len())
	}
	for i, o := range f.Obstacles() {
		if want := 1280 + float64(i)*300; o.X != want {
			t.Errorf("obstacle %d x = %v, expected %v", i, o.X, want)
		}
		if o.W != 74 {
			t.Errorf("obstacle %d width = %v, expected 74", i, o.W)
		}
	}
}

func TestFieldWindowInvariant(t *testing.T) {
	cfg := config.DefaultTuning()
	f := newTestField(t, cfg, 99)
	f.SpawnInitial(1280, 300, 5, 0)
	rng := rand.New(rand.NewSource(4))

	recycled := 0
	for step := 0; step < 20000; step++ {
		f.Advance(rng.Float64()*0.033, 270*(1+rng.Float64()*0.18))
		if f.Recycle(300, step/100) {
			recycled++
		}

		obs := f.Obstacles()
		if len(obs) != 5 {
			t.Fatalf("step %d: field has %d obstacles, expected 5", step, len(obs))
		}
		for i := 1; i < len(obs); i++ {
			if obs[i].X < obs[i-1].X {
				t.Fatalf("step %d: obstacles out of order at %d: %v < %v", step, i, obs[i].X, obs[i-1].X)
			}
		}
	}
	if recycled == 0 {
		t.Error("expected obstacles to be recycled")
	}
}

func TestRecycleOnlyPastLeftBoundary(t *testing.T) {
	f := newTestField(t, config.DefaultTuning(), 1)
	f.SpawnInitial(0, 300, 5, 0)

	// Trailing edge at exactly 0 is not past the boundary
	f.Advance(1, 74)
	if f.Recycle(300, 0) {
		t.Fatal("obstacle with trailing edge at 0 should not recycle")
	}

	f.Advance(1, 0.5)
	lastX := f.Obstacles()[4].X
	if !f.Recycle(300, 0) {
		t.Fatal("obstacle with trailing edge < 0 should recycle")
	}

	obs := f.Obstacles()
	if obs[4].X != lastX+300 {
		t.Errorf("recycled obstacle x = %v, expected %v", obs[4].X, lastX+300)
	}
	if obs[0].X != -74.5+300 {
		t.Errorf("front should be the former second obstacle, x = %v", obs[0].X)
	}
}

func TestGapGeometryWithinBounds(t *testing.T) {
	cfg := config.DefaultTuning()
	groundY := cfg.GroundY()

	for _, score := range []int{0, 5, 50, 500, 100000} {
		f := newTestField(t, cfg, int64(score))
		f.SpawnInitial(1280, 300, 5, score)
		for i := 0; i < 200; i++ {
			f.Advance(1, 400)
			f.Recycle(300, score)
		}

		for _, o := range f.Obstacles() {
			if o.Gap < cfg.Obstacles.GapFloor {
				t.Errorf("score %d: gap %v below floor", score, o.Gap)
			}
			if o.TopH < cfg.Obstacles.MarginTop {
				t.Errorf("score %d: top wall %v above margin %v", score, o.TopH, cfg.Obstacles.MarginTop)
			}
			if bottom := o.TopH + o.Gap + cfg.Obstacles.MarginBottom; bottom > groundY+1e-9 {
				t.Errorf("score %d: gap bottom %v leaves less than the margin above ground %v", score, bottom, groundY)
			}
		}
	}
}

func TestRecycledGapUsesCurrentScore(t *testing.T) {
	f := newTestField(t, config.DefaultTuning(), 1)
	f.SpawnInitial(0, 300, 5, 0)
	f.Advance(1, 80)

	f.Recycle(300, 100)
	if got := f.Obstacles()[4].Gap; got != 213 {
		t.Errorf("recycled gap = %v, expected 213 at score 100", got)
	}
	if got := f.Obstacles()[0].Gap; got != 235 {
		t.Errorf("existing gap = %v, expected 235", got)
	}
}

func TestFieldReseedReproducible(t *testing.T) {
	cfg := config.DefaultTuning()
	a := newTestField(t, cfg, 42)
	b := newTestField(t, cfg, 7)
	b.Reseed(42)

	a.SpawnInitial(1280, 300, 5, 0)
	b.SpawnInitial(1280, 300, 5, 0)

	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Errorf("obstacle %d differs after reseed", i)
		}
	}
}

func TestBubblesExpire(t *testing.T) {
	b := newBubbles(1, 1)
	b.Burst(100, 100)
	n := b.Len()
	if n < 10 || n > 15 {
		t.Fatalf("burst spawned %d bubbles, expected 10-15", n)
	}

	for i := 0; i < 20; i++ {
		b.Update(0.05)
	}
	if b.Len() != 0 {
		t.Errorf("bubbles should expire within 1s, %d remain", b.Len())
	}
}

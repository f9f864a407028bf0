package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/ocean-run/internal/config"
	"github.com/vovakirdan/ocean-run/internal/core"
	"github.com/vovakirdan/ocean-run/internal/games/flappy"
)

type fakeSim struct {
	deltas   []float64
	renders  int
	endAfter int
	state    flappy.RunState
}

func (f *fakeSim) Advance(dt float64) {
	f.deltas = append(f.deltas, dt)
	if f.endAfter > 0 && len(f.deltas) >= f.endAfter {
		f.state = flappy.StateEnded
	}
}

func (f *fakeSim) State() flappy.RunState  { return f.state }
func (f *fakeSim) Render(dst *core.Screen) { f.renders++ }

func TestFrameTimerDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	timer := NewFrameTimer(0.033)

	tests := []struct {
		name     string
		ts       time.Time
		expected float64
	}{
		{"first frame", base, 0},
		{"normal frame", base.Add(16 * time.Millisecond), 0.016},
		{"long pause capped", base.Add(5 * time.Second), 0.033},
		{"clock went backwards", base.Add(4 * time.Second), 0},
	}

	for _, tc := range tests {
		if got := timer.Delta(tc.ts); got != tc.expected {
			t.Errorf("%s: Delta() = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestFrameTimerArm(t *testing.T) {
	base := time.Unix(1000, 0)
	timer := NewFrameTimer(0.033)
	timer.Delta(base)
	timer.Delta(base.Add(10 * time.Millisecond))

	timer.Arm()
	if got := timer.Delta(base.Add(time.Hour)); got != 0 {
		t.Errorf("first delta after Arm = %v, expected 0", got)
	}
}

func TestDriverStopsWhenEnded(t *testing.T) {
	sim := &fakeSim{state: flappy.StateRunning, endAfter: 3}
	d := NewDriver(sim, core.NewScreen(10, 5), 0.033)
	base := time.Unix(0, 0)

	for i := 0; i < 2; i++ {
		if !d.Frame(base.Add(time.Duration(i) * 16 * time.Millisecond)) {
			t.Fatalf("frame %d should request another frame", i)
		}
	}
	if d.Frame(base.Add(32 * time.Millisecond)) {
		t.Error("frame that ends the run should not request another")
	}
	if sim.renders != 3 {
		t.Errorf("expected 3 renders, got %d", sim.renders)
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
}

func TestDriverRearmResetsDelta(t *testing.T) {
	sim := &fakeSim{state: flappy.StateRunning}
	d := NewDriver(sim, nil, 0.033)
	base := time.Unix(0, 0)

	d.Frame(base)
	d.Frame(base.Add(20 * time.Millisecond))
	d.Rearm()
	d.Frame(base.Add(10 * time.Second))

	want := []float64{0, 0.02, 0}
	for i, dt := range want {
		if sim.deltas[i] != dt {
			t.Errorf("delta %d = %v, expected %v", i, sim.deltas[i], dt)
		}
	}
	if sim.renders != 0 {
		t.Error("driver without a screen should not render")
	}
}

func TestRunReturnsOnEnd(t *testing.T) {
	sim := &fakeSim{state: flappy.StateRunning, endAfter: 4}
	d := NewDriver(sim, nil, 0.033)

	ticks := make(chan time.Time, 10)
	base := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		ticks <- base.Add(time.Duration(i) * 16 * time.Millisecond)
	}

	if err := d.Run(context.Background(), ticks); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(sim.deltas) != 4 {
		t.Errorf("expected 4 frames before stopping, got %d", len(sim.deltas))
	}
	if len(ticks) != 6 {
		t.Errorf("expected 6 unconsumed ticks, got %d", len(ticks))
	}
}

func TestRunCancelled(t *testing.T) {
	d := NewDriver(&fakeSim{state: flappy.StateIdle}, nil, 0.033)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, make(chan time.Time))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestDriverWithGame(t *testing.T) {
	g, err := flappy.New(config.DefaultTuning(), nil)
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Flap()

	d := NewDriver(g, core.NewScreen(80, 24), 0.033)
	base := time.Unix(0, 0)
	frames := 0
	for d.Frame(base.Add(time.Duration(frames) * 16 * time.Millisecond)) {
		frames++
		if frames > 10000 {
			t.Fatal("unattended run never ended")
		}
	}
	if g.State() != flappy.StateEnded {
		t.Errorf("expected ENDED, got %s", g.State())
	}
}

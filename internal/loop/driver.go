package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/ocean-run/internal/core"
	"github.com/vovakirdan/ocean-run/internal/games/flappy"
)

// Simulation is the part of the game the driver needs each frame.
type Simulation interface {
	Advance(dt float64)
	State() flappy.RunState
	Render(dst *core.Screen)
}

// Driver runs one frame per callback: delta, advance, render. Frame reports
// whether another frame should be scheduled, which is false once the run
// has ended. Callers re-arm the driver when a new run starts.
type Driver struct {
	sim    Simulation
	screen *core.Screen
	timer  *FrameTimer
	frames int
}

// NewDriver creates a driver rendering sim into screen.
func NewDriver(sim Simulation, screen *core.Screen, maxStep float64) *Driver {
	return &Driver{
		sim:    sim,
		screen: screen,
		timer:  NewFrameTimer(maxStep),
	}
}

// Frame advances and renders one frame at timestamp ts.
func (d *Driver) Frame(ts time.Time) bool {
	dt := d.timer.Delta(ts)
	d.sim.Advance(dt)
	if d.screen != nil {
		d.sim.Render(d.screen)
	}
	d.frames++
	return d.sim.State() != flappy.StateEnded
}

// Rearm prepares the driver for a new run after a restart.
func (d *Driver) Rearm() {
	d.timer.Arm()
}

// Frames returns the number of frames driven so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Screen returns the render target.
func (d *Driver) Screen() *core.Screen {
	return d.screen
}

// Run drives frames from ticks until the run ends, the channel closes, or
// ctx is cancelled.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts, ok := <-ticks:
			if !ok {
				return nil
			}
			if !d.Frame(ts) {
				return nil
			}
		}
	}
}

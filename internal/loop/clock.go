// Package loop adapts an external per-frame callback source to the
// simulation. It converts timestamps into capped deltas and stops
// requesting frames once a run has ended.
package loop

import (
	"time"
)

// FrameTimer turns frame timestamps into simulation deltas.
// The first frame after Arm yields 0 so a resumed loop never sees the
// time spent paused.
type FrameTimer struct {
	maxStep float64
	last    time.Time
	armed   bool
}

// NewFrameTimer creates a timer whose deltas never exceed maxStep seconds.
func NewFrameTimer(maxStep float64) *FrameTimer {
	return &FrameTimer{maxStep: maxStep, armed: true}
}

// Arm resets the timer; the next Delta returns 0.
func (t *FrameTimer) Arm() {
	t.armed = true
}

// Delta returns the seconds since the previous frame, in [0, maxStep].
func (t *FrameTimer) Delta(ts time.Time) float64 {
	if t.armed {
		t.armed = false
		t.last = ts
		return 0
	}

	dt := ts.Sub(t.last).Seconds()
	t.last = ts
	if dt < 0 {
		return 0
	}
	return min(dt, t.maxStep)
}

package flappy

import (
	"testing"

	"github.com/vovakirdan/ocean-run/internal/config"
	"github.com/vovakirdan/ocean-run/internal/core"
)

// fakeBest records reconcile calls the way highscore.Keeper would.
type fakeBest struct {
	best   int
	calls  int
	writes int
}

func (f *fakeBest) Best() int { return f.best }

func (f *fakeBest) Reconcile(score int) bool {
	f.calls++
	if score <= f.best {
		return false
	}
	f.best = score
	f.writes++
	return true
}

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64, best BestScorer) *Game {
	t.Helper()
	g, err := New(config.DefaultTuning(), best)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testConfig(seed))
	return g
}

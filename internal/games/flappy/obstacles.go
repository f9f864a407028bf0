package flappy

import (
	"math/rand"

	"github.com/vovakirdan/ocean-run/internal/config"
	"github.com/vovakirdan/ocean-run/internal/core"
)

// Obstacle is a vertical wall pair with a passable gap.
type Obstacle struct {
	X      float64 // Left edge, decreases over time
	W      float64 // Width
	Gap    float64 // Height of the passable opening
	TopH   float64 // Height of the top wall; the gap starts here
	Scored bool    // Whether this obstacle has already awarded a point
}

// TrailingEdge returns the obstacle's right edge.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.W
}

// TopRect returns the collision rectangle of the top wall.
func (o Obstacle) TopRect() core.RectF {
	return core.NewRectF(o.X, 0, o.W, o.TopH)
}

// BottomRect returns the collision rectangle of the bottom wall.
func (o Obstacle) BottomRect(groundY float64) core.RectF {
	by := o.TopH + o.Gap
	return core.NewRectF(o.X, by, o.W, groundY-by)
}

// Field owns the sliding window of upcoming obstacles, ordered by x.
// After SpawnInitial it always holds exactly the spawned count.
type Field struct {
	obstacles    []Obstacle
	rng          *rand.Rand
	difficulty   *config.Difficulty
	width        float64
	marginTop    float64
	marginBottom float64
	groundY      float64
}

// NewField creates an empty field. Geometry is drawn from a source seeded
// with seed so a run is reproducible.
func NewField(t config.Tuning, diff *config.Difficulty, seed int64) *Field {
	d := t.Density()
	return &Field{
		obstacles:    make([]Obstacle, 0, max(1, t.Obstacles.Count)),
		rng:          rand.New(rand.NewSource(seed)),
		difficulty:   diff,
		width:        t.Obstacles.Width * d,
		marginTop:    t.Obstacles.MarginTop * d,
		marginBottom: t.Obstacles.MarginBottom * d,
		groundY:      t.GroundY(),
	}
}

// Reseed restarts the geometry source.
func (f *Field) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// SpawnInitial replaces the field with count obstacles at fieldWidth + i*spacing.
func (f *Field) SpawnInitial(fieldWidth, spacing float64, count, score int) {
	f.obstacles = f.obstacles[:0]
	for i := 0; i < count; i++ {
		f.obstacles = append(f.obstacles, f.makeObstacle(fieldWidth+float64(i)*spacing, score))
	}
}

// Advance shifts every obstacle left by scrollSpeed*dt.
func (f *Field) Advance(dt, scrollSpeed float64) {
	shift := scrollSpeed * dt
	for i := range f.obstacles {
		f.obstacles[i].X -= shift
	}
}

// Recycle drops the leading obstacle once its trailing edge is left of the
// world boundary and appends a fresh one spacing after the last.
// Reports whether an obstacle was recycled.
func (f *Field) Recycle(spacing float64, score int) bool {
	if len(f.obstacles) == 0 || f.obstacles[0].TrailingEdge() >= 0 {
		return false
	}

	last := f.obstacles[len(f.obstacles)-1]
	copy(f.obstacles, f.obstacles[1:])
	f.obstacles[len(f.obstacles)-1] = f.makeObstacle(last.X+spacing, score)
	return true
}

// makeObstacle builds an obstacle at x with gap geometry for the score.
func (f *Field) makeObstacle(x float64, score int) Obstacle {
	gap := f.difficulty.GapForScore(score)

	topMin := f.marginTop
	topMax := f.groundY - gap - f.marginBottom
	if topMax < topMin {
		topMax = topMin // rejected by Tuning.Validate; keeps geometry finite
	}

	return Obstacle{
		X:    x,
		W:    f.width,
		Gap:  gap,
		TopH: topMin + f.rng.Float64()*(topMax-topMin),
	}
}

// Obstacles returns the live obstacle window. Callers inside the package
// may update Scored; everything else should use Game.Snapshot.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of obstacles in the window.
func (f *Field) Len() int {
	return len(f.obstacles)
}

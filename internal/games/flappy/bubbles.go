package flappy

import "math/rand"

// Bubble is a short-lived decorative particle emitted on flap.
// Bubbles never take part in collision or scoring.
type Bubble struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Life   float64 // Total lifetime in seconds
	T      float64 // Age in seconds
}

// Bubbles holds the live particles and their own random source, separate
// from the obstacle field so decoration never perturbs geometry.
type Bubbles struct {
	items   []Bubble
	rng     *rand.Rand
	density float64
}

func newBubbles(seed int64, density float64) *Bubbles {
	return &Bubbles{
		items:   make([]Bubble, 0, 32),
		rng:     rand.New(rand.NewSource(seed)),
		density: density,
	}
}

func (b *Bubbles) between(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}

// Burst spawns 10-15 bubbles around (x, y).
func (b *Bubbles) Burst(x, y float64) {
	d := b.density
	n := 10 + b.rng.Intn(6)
	for i := 0; i < n; i++ {
		b.items = append(b.items, Bubble{
			X:    x + b.between(-10, 6)*d,
			Y:    y + b.between(-6, 10)*d,
			R:    b.between(2.2, 5.8) * d,
			VX:   b.between(-40, 40) * d,
			VY:   b.between(-220, -120) * d,
			Life: b.between(0.5, 0.9),
		})
	}
}

// Update ages, moves and expires bubbles.
func (b *Bubbles) Update(dt float64) {
	alive := b.items[:0]
	for _, p := range b.items {
		p.T += dt
		if p.T >= p.Life {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY -= 30 * b.density * dt
		alive = append(alive, p)
	}
	b.items = alive
}

// Clear removes every bubble.
func (b *Bubbles) Clear() {
	b.items = b.items[:0]
}

// Len returns the number of live bubbles.
func (b *Bubbles) Len() int {
	return len(b.items)
}

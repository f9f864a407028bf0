package flappy

import "github.com/vovakirdan/ocean-run/internal/config"

// scoreLine returns the x an obstacle's trailing edge must pass to score.
func scoreLine(a Actor, boundary config.ScoringBoundary) float64 {
	if boundary == config.BoundaryCenter {
		return a.X
	}
	return a.X - a.R
}

// ScoreTick marks every unscored obstacle that the actor has cleared and
// returns the number of points awarded. An obstacle scores at most once.
func ScoreTick(a Actor, obstacles []Obstacle, boundary config.ScoringBoundary) int {
	line := scoreLine(a, boundary)
	awarded := 0
	for i := range obstacles {
		if !obstacles[i].Scored && obstacles[i].TrailingEdge() < line {
			obstacles[i].Scored = true
			awarded++
		}
	}
	return awarded
}

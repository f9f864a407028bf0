package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ocean-run/internal/core"
)

// Visual characters for rendering
const (
	CoralChar      = '█'
	CoralCapTop    = '▄'
	CoralCapBottom = '▀'
	GroundChar     = '▒'
	BodyChar       = '●'
	BubbleSmall    = '°'
	BubbleLarge    = 'o'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// RenderSnapshot draws a snapshot scaled to the screen size.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.WorldW <= 0 || s.WorldH <= 0 {
		return
	}

	vp := viewport{
		sx: float64(dst.Width()) / s.WorldW,
		sy: float64(dst.Height()) / s.WorldH,
	}
	groundRow := min(vp.row(s.GroundY), dst.Height()-1)

	for _, o := range s.Obstacles {
		drawObstacle(dst, vp, o, groundRow)
	}
	for _, b := range s.Bubbles {
		r := BubbleSmall
		if b.R > 4 {
			r = BubbleLarge
		}
		dst.SetColored(vp.col(b.X), vp.row(b.Y), r, core.ColorBubble)
	}
	drawActor(dst, vp, s.Actor)

	// Seabed
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorSand)
	}

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorHUD)
	best := fmt.Sprintf(" Best: %d ", s.Best)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorHUD)

	switch s.State {
	case StateIdle:
		dst.DrawTextCentered(int(float64(dst.Height())*0.22), "Press SPACE or click to start", core.ColorOverlay)
	case StateEnded:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", s.Score, s.Best),
			"Press R to restart")
	}
}

// drawObstacle renders the top and bottom walls of one obstacle.
func drawObstacle(dst *core.Screen, vp viewport, o Obstacle, groundRow int) {
	x0 := vp.col(o.X)
	x1 := int(math.Ceil(o.TrailingEdge() * vp.sx))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	topEnd := vp.row(o.TopH)
	bottomStart := int(math.Ceil((o.TopH + o.Gap) * vp.sy))

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, CoralChar, core.ColorCoral)
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, CoralCapTop, core.ColorCoralCap)
		}
		for y := bottomStart; y < groundRow; y++ {
			dst.SetColored(x, y, CoralChar, core.ColorCoral)
		}
		if bottomStart < groundRow {
			dst.SetColored(x, bottomStart, CoralCapBottom, core.ColorCoralCap)
		}
	}
}

// drawActor draws the dolphin; the head glyph tilts with vertical velocity.
func drawActor(dst *core.Screen, vp viewport, a Actor) {
	x, y := vp.col(a.X), vp.row(a.Y)
	head := '▶'
	switch {
	case a.VY < -300:
		head = '◥'
	case a.VY > 300:
		head = '◢'
	}
	dst.SetColored(x-1, y, BodyChar, core.ColorDolphin)
	dst.SetColored(x, y, head, core.ColorDolphin)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorOverlay)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len(l))/2, box.Y+3+i, l, core.ColorOverlay)
	}
}

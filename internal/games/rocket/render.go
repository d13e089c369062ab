package rocket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Visual characters for rendering
const (
	RocketBodyChar = '█'
	RocketNoseChar = '►'
	FlameChar      = '≈'
	ObstacleChar   = '▓'
	MoonChar       = '☾'
	GroundChar     = '═'
)

// viewport maps world units onto the terminal cells below the HUD row.
type viewport struct {
	top    int
	bottom int // Exclusive; the ground line sits here
	sx, sy float64
}

func newViewport(w World, dst *core.Screen) viewport {
	rows := dst.Height() - 1 // Row 0 is the HUD
	return viewport{
		top:    1,
		bottom: dst.Height() - 1,
		sx:     float64(dst.Width()) / w.Width,
		sy:     float64(rows) / w.Height,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current state to the screen: starfield, ground, HUD,
// the obstacles and rocket during a round, or the title or game-over panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.frames++
	if dst.Height() < 3 || dst.Width() < 10 {
		dst.DrawText(0, 0, "too small")
		return
	}

	v := newViewport(g.world, dst)
	g.drawStars(dst, v)

	s := g.state
	if s.Phase == PhasePlaying {
		for _, o := range s.Obstacles {
			g.drawObstacle(dst, v, o)
		}
		g.drawRocket(dst, v, s.Bird)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorPink)
	g.drawHUD(dst, s)

	switch s.Phase {
	case PhaseIdle:
		drawPanel(dst, []panelLine{
			{"FLAPPY SPACE BIRD", core.ColorBrightMagenta},
			{"", core.ColorDefault},
			{"Click or press SPACE to fly", core.ColorWhite},
			{"", core.ColorDefault},
			{"[Enter] START GAME", core.ColorBrightYellow},
		})
	case PhaseGameOver:
		lines := []panelLine{
			{"GAME OVER", core.ColorBrightMagenta},
			{fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite},
		}
		if s.NewHighScore() {
			lines = append(lines, panelLine{"★ NEW HIGH SCORE! ★", core.ColorBrightYellow})
		}
		lines = append(lines,
			panelLine{"", core.ColorDefault},
			panelLine{"[Enter] PLAY AGAIN   [M] MENU", core.ColorCyan},
		)
		drawPanel(dst, lines)
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport) {
	for _, st := range g.stars.Stars() {
		x := int(st.X * float64(dst.Width()))
		y := v.top + int(st.Y*float64(v.bottom-v.top))

		r := '·'
		switch st.Size {
		case 2:
			r = '•'
		case 3:
			r = '*'
		}
		c := core.ColorGray
		if st.Brightness(g.frames) > 0.8 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x0 := v.col(o.X)
	x1 := core.Max(v.col(o.X+g.world.ObstacleWidth), x0+1)
	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapTop + g.world.GapSize)

	top := core.NewRect(x0, v.top, x1-x0, gapTop-v.top)
	bottom := core.NewRect(x0, gapBottom, x1-x0, v.bottom-gapBottom)
	for _, part := range []core.Rect{top, bottom} {
		if part.H <= 0 {
			continue
		}
		dst.DrawRect(part, ObstacleChar, core.ColorMagenta)
		if part.H >= 3 && part.W >= 3 {
			dst.SetColored(part.X+part.W/2, part.Y+part.H/2, MoonChar, core.ColorWhite)
		}
	}
}

func (g *Game) drawRocket(dst *core.Screen, v viewport, b Bird) {
	x0 := v.col(g.world.RocketX)
	x1 := core.Max(v.col(g.world.RocketX+g.world.RocketSize), x0+1)
	y0 := core.Clamp(v.row(b.Y), v.top, v.bottom-1)
	y1 := core.Clamp(core.Max(v.row(b.Y+g.world.RocketSize), y0+1), y0+1, v.bottom)

	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), RocketBodyChar, core.ColorPink)

	// Nose follows the tilt: up when climbing, down when falling
	noseY := y0 + (y1-y0)/2
	tilt := Tilt(b.Velocity)
	switch {
	case tilt <= -10:
		noseY = y0
	case tilt >= 10:
		noseY = y1 - 1
	}
	dst.SetColored(x1-1, noseY, RocketNoseChar, core.ColorBrightYellow)

	if b.Velocity < 0 {
		dst.SetColored(x0-1, y0+(y1-y0)/2, FlameChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen, s State) {
	dst.DrawTextColored(1, 0, "FLAPPY SPACE BIRD", core.ColorBrightMagenta)
	scores := fmt.Sprintf("Score: %d  High: %d ", s.Score, s.HighScore)
	dst.DrawTextColored(dst.Width()-len(scores), 0, scores, core.ColorBrightWhite)
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed, centered block of lines.
func drawPanel(dst *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}

	boxW := width + 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightMagenta)

	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l.text, l.color)
	}
}

package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

const (
	titleFontSize = 24
	fontSize      = 12
)

var (
	skyTop      = color.RGBA{0x0a, 0x00, 0x15, 0xff}
	skyBottom   = color.RGBA{0x1a, 0x00, 0x33, 0xff}
	hudColor    = color.RGBA{0x2d, 0x0a, 0x4e, 0xff}
	rocketGlow  = color.RGBA{0xff, 0x6b, 0x9d, 0xcc}
	shade       = color.RGBA{0x00, 0x00, 0x00, 0x99}
	obstacleCol = colornames.Mediumorchid
	edgeCol     = colornames.Deepskyblue
	accentCol   = colornames.Hotpink
)

// newFaceSource loads the arcade font bundled with ebiten.
func newFaceSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return s, nil
}

func (g *Game) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: g.faceSource, Size: size}
}

// drawText draws s with its top edge at y, centered on x when center is set.
func (g *Game) drawText(dst *ebiten.Image, s string, pos f64.Vec2, size float64, clr color.Color, center bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos[0], pos[1])
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	if center {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, g.face(size), op)
}

func (g *Game) drawBackground(dst *ebiten.Image) {
	w := g.world
	vector.DrawFilledRect(dst, 0, 0, float32(w.Width), hudHeight, hudColor, false)

	// Two bands approximate the vertical gradient of the sky.
	half := float32(w.Height) / 2
	vector.DrawFilledRect(dst, 0, hudHeight, float32(w.Width), half, skyTop, false)
	vector.DrawFilledRect(dst, 0, hudHeight+half, float32(w.Width), half, skyBottom, false)
}

func (g *Game) drawStars(dst *ebiten.Image) {
	for _, s := range g.game.Stars().Stars() {
		b := s.Brightness(g.frames)
		x := float32(s.X * g.world.Width)
		y := float32(hudHeight + s.Y*g.world.Height)
		clr := color.RGBA{0xff, 0xff, 0xff, uint8(b * 0xff)}
		vector.DrawFilledCircle(dst, x, y, float32(s.Size)*0.75, clr, true)
	}
}

func (g *Game) drawObstacles(dst *ebiten.Image, obs []rocket.Obstacle) {
	w := g.world
	for _, o := range obs {
		x := float32(o.X)
		width := float32(w.ObstacleWidth)
		top := float32(o.GapTop)
		bottom := float32(o.GapTop + w.GapSize)

		vector.DrawFilledRect(dst, x, hudHeight, width, top, obstacleCol, false)
		vector.StrokeRect(dst, x, hudHeight, width, top, 2, edgeCol, false)
		vector.DrawFilledRect(dst, x, hudHeight+bottom, width, float32(w.Height)-bottom, obstacleCol, false)
		vector.StrokeRect(dst, x, hudHeight+bottom, width, float32(w.Height)-bottom, 2, edgeCol, false)
	}
}

// rocketSprite draws the rocket facing right into a square image once.
func (g *Game) rocketSprite() *ebiten.Image {
	if g.sprite != nil {
		return g.sprite
	}
	size := float32(g.world.RocketSize)
	img := ebiten.NewImage(int(size), int(size))

	body := size * 0.6
	vector.DrawFilledRect(img, size*0.1, size*0.3, body, size*0.4, colornames.Whitesmoke, true)
	var nose vector.Path
	nose.MoveTo(size*0.7, size*0.3)
	nose.LineTo(size, size*0.5)
	nose.LineTo(size*0.7, size*0.7)
	nose.Close()
	vs, is := nose.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 0.42, 0.62, 1
	}
	img.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	vector.DrawFilledCircle(img, size*0.45, size*0.5, size*0.08, colornames.Deepskyblue, true)
	vector.DrawFilledRect(img, size*0.1, size*0.2, size*0.15, size*0.1, accentCol, false)
	vector.DrawFilledRect(img, size*0.1, size*0.7, size*0.15, size*0.1, accentCol, false)

	g.sprite = img
	return img
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

func (g *Game) drawRocket(dst *ebiten.Image, b rocket.Bird) {
	size := g.world.RocketSize
	half := size / 2

	if b.Velocity < 0 {
		fx := float32(g.world.RocketX - 6)
		fy := float32(hudHeight + b.Y + half)
		vector.DrawFilledCircle(dst, fx, fy, float32(size)/6, colornames.Orange, true)
	}
	vector.DrawFilledCircle(dst, float32(g.world.RocketX+half), float32(hudHeight+b.Y+half), float32(half), color.RGBA{rocketGlow.R, rocketGlow.G, rocketGlow.B, 0x30}, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(rocket.Tilt(b.Velocity) * math.Pi / 180)
	op.GeoM.Translate(g.world.RocketX+half, hudHeight+b.Y+half)
	dst.DrawImage(g.rocketSprite(), op)
}

func (g *Game) drawGround(dst *ebiten.Image) {
	y := float32(hudHeight+g.world.Height) - 4
	third := float32(g.world.Width) / 3
	vector.DrawFilledRect(dst, 0, y, third, 4, accentCol, false)
	vector.DrawFilledRect(dst, third, y, third, 4, obstacleCol, false)
	vector.DrawFilledRect(dst, 2*third, y, third, 4, edgeCol, false)
}

func (g *Game) drawHUD(dst *ebiten.Image, s rocket.State) {
	g.drawText(dst, fmt.Sprintf("Score: %d", s.Score), f64.Vec2{16, 14}, fontSize, colornames.White, false)
	g.drawText(dst, fmt.Sprintf("High: %d", s.HighScore), f64.Vec2{g.world.Width - 160, 14}, fontSize, colornames.White, false)
}

func (g *Game) drawOverlay(dst *ebiten.Image, s rocket.State) {
	if s.Phase == rocket.PhasePlaying {
		return
	}
	w := g.world
	vector.DrawFilledRect(dst, 0, hudHeight, float32(w.Width), float32(w.Height), shade, false)

	cx := w.Width / 2
	cy := hudHeight + w.Height/2

	switch s.Phase {
	case rocket.PhaseIdle:
		g.drawText(dst, "FLAPPY SPACE BIRD", f64.Vec2{cx, cy - 80}, titleFontSize, accentCol, true)
		g.drawText(dst, "Click or press SPACE to fly", f64.Vec2{cx, cy}, fontSize, colornames.White, true)
	case rocket.PhaseGameOver:
		g.drawText(dst, "GAME OVER", f64.Vec2{cx, cy - 80}, titleFontSize, colornames.White, true)
		g.drawText(dst, fmt.Sprintf("Score: %d", s.Score), f64.Vec2{cx, cy - 20}, fontSize, colornames.White, true)
		if s.NewHighScore() {
			g.drawText(dst, "NEW HIGH SCORE!", f64.Vec2{cx, cy + 20}, fontSize, colornames.Gold, true)
		}
	}

	for _, b := range buttons(s.Phase, w) {
		r := b.rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), accentCol, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, colornames.White, false)
		center := f64.Vec2{float64(r.X + r.W/2), float64(r.Y+r.H/2) - fontSize/2}
		g.drawText(dst, b.label, center, fontSize, colornames.White, true)
	}
}

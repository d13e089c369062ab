// Package desktop runs the game in a window with ebiten. Ebiten calls
// Update at the configured tick rate; the simulation only advances while a
// round is running.
package desktop

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/platform/events"
)

// Game adapts a rocket.Game to ebiten.Game.
type Game struct {
	game       *rocket.Game
	world      rocket.World
	journal    *events.Journal
	faceSource *text.GoTextFaceSource
	sprite     *ebiten.Image
	frames     int
}

// NewGame wraps game for ebiten.
func NewGame(game *rocket.Game, logger *log.Logger) (*Game, error) {
	src, err := newFaceSource()
	if err != nil {
		return nil, err
	}
	return &Game{
		game:       game,
		world:      game.World(),
		journal:    events.NewJournal(logger, game.ID()),
		faceSource: src,
	}, nil
}

// Update reads input and steps the game once.
func (g *Game) Update() error {
	g.frames++

	in := keyActions(inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a := clickAction(g.game.State().Phase, g.world, x, y); a != core.ActionNone {
			in.Set(a)
		}
	}

	g.journal.Record(g.game.Step(in))
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.game.State()

	g.drawBackground(screen)
	g.drawStars(screen)
	if fieldVisible(s.Phase) {
		g.drawObstacles(screen, s.Obstacles)
		g.drawRocket(screen, s.Bird)
	}
	g.drawGround(screen)
	g.drawHUD(screen, s)
	g.drawOverlay(screen, s)
}

// fieldVisible reports whether obstacles and the rocket are drawn. The
// title and crash screens show only the sky behind their overlay.
func fieldVisible(p rocket.Phase) bool {
	return p == rocket.PhasePlaying
}

// Layout fixes the logical screen to the world size plus the HUD strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layoutSize(g.world)
}

func layoutSize(w rocket.World) (int, int) {
	return int(w.Width), hudHeight + int(w.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *rocket.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := NewGame(game, logger)
	if err != nil {
		return err
	}

	w, h := layoutSize(game.World())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

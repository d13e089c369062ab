package rocket

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	run := func() []Snapshot {
		g := New(DefaultWorld(), 12345, 50)
		g.Step(frame(core.ActionStart))

		var snaps []Snapshot
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionActivate)
			}
			res := g.Step(in)
			snaps = append(snaps, g.Snapshot())
			if res.State.Phase == PhaseGameOver {
				g.Step(frame(core.ActionRestart))
			}
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at step %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGameHandleTransitions(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)

	if res := g.Handle(core.ActionActivate); res.Transition.Changed() || res.State.Bird.Velocity != 0 {
		t.Errorf("activate on title screen should do nothing: %+v", res)
	}

	res := g.Handle(core.ActionStart)
	if res.Transition != (Transition{From: PhaseIdle, To: PhasePlaying}) {
		t.Fatalf("start transition = %+v", res.Transition)
	}

	res = g.Handle(core.ActionActivate)
	if res.Transition.Changed() || res.State.Bird.Velocity != -10 {
		t.Errorf("activate while playing: %+v", res)
	}

	// Fall to the floor
	for i := 0; i < 1000 && g.State().Phase == PhasePlaying; i++ {
		res = g.Advance()
	}
	if res.Transition != (Transition{From: PhasePlaying, To: PhaseGameOver}) {
		t.Fatalf("expected playing -> game_over, got %+v", res.Transition)
	}

	res = g.Handle(core.ActionMenu)
	if res.Transition != (Transition{From: PhaseGameOver, To: PhaseIdle}) {
		t.Errorf("menu transition = %+v", res.Transition)
	}
}

func TestGameStepStartsWithoutTicking(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)

	res := g.Step(frame(core.ActionStart))
	if res.State.Phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", res.State.Phase)
	}
	if res.State.Ticks != 0 || res.State.Bird.Y != 250 {
		t.Errorf("start frame should not tick: %+v", res.State)
	}

	res = g.Step(core.NewInputFrame())
	if res.State.Ticks != 1 || !approx(res.State.Bird.Y, 250.6) {
		t.Errorf("next frame should tick once: %+v", res.State)
	}
}

func TestGameStepEmptyFrameOnTitle(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)

	res := g.Step(core.NewInputFrame())
	if res.Transition.Changed() || res.State.Phase != PhaseIdle || res.State.Ticks != 0 {
		t.Errorf("empty frame should leave the title screen alone: %+v", res)
	}
}

func TestGameStepActivateThenTick(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Step(frame(core.ActionStart))

	res := g.Step(frame(core.ActionActivate))
	if !approx(res.State.Bird.Velocity, -9.4) || !approx(res.State.Bird.Y, 240.6) {
		t.Errorf("activate then tick: bird = %+v, expected y=240.6 v=-9.4", res.State.Bird)
	}
}

func TestGameStateIsACopy(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)

	s := g.State()
	s.Obstacles[0].X = -500
	if g.State().Obstacles[0].X != 600 {
		t.Error("mutating a returned State changed the game")
	}
}

func TestGameHighScoreSurvivesRounds(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)
	g.state.Score = 5
	for g.State().Phase == PhasePlaying {
		g.Advance()
	}
	if g.State().HighScore != 5 {
		t.Fatalf("high score = %d, expected 5", g.State().HighScore)
	}

	g.Handle(core.ActionRestart)
	g.state.Score = 2
	for g.State().Phase == PhasePlaying {
		g.Advance()
	}
	if g.State().HighScore != 5 {
		t.Errorf("lower score replaced the high score: %d", g.State().HighScore)
	}
	if g.State().NewHighScore() {
		t.Error("NewHighScore should be false when the record stands")
	}

	g.Handle(core.ActionMenu)
	if g.State().HighScore != 5 {
		t.Errorf("menu cleared the high score: %d", g.State().HighScore)
	}
}

func TestGameTiedHighScoreIsNotARecord(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)
	g.state.Score = 5
	for g.State().Phase == PhasePlaying {
		g.Advance()
	}
	if !g.State().RecordBroken {
		t.Fatal("first scoring round should break the record")
	}

	g.Handle(core.ActionRestart)
	if g.State().RecordBroken {
		t.Error("RecordBroken should reset when a round starts")
	}
	g.state.Score = 5
	for g.State().Phase == PhasePlaying {
		g.Advance()
	}

	s := g.State()
	if s.Score != 5 || s.HighScore != 5 {
		t.Fatalf("score = %d high = %d, expected 5 and 5", s.Score, s.HighScore)
	}
	if s.RecordBroken {
		t.Error("tying the high score should not count as breaking it")
	}
	if !s.NewHighScore() {
		t.Error("the banner should still show for a round that reaches the high score")
	}
}

func TestRenderIdle(t *testing.T) {
	g := New(DefaultWorld(), 1, 100)
	screen := core.NewScreen(80, 25)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"FLAPPY SPACE BIRD", "Click or press SPACE to fly", "START GAME", "Score: 0", "High: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen should contain %q:\n%s", want, out)
		}
	}
	if screen.Get(0, 24) != GroundChar {
		t.Errorf("ground should be drawn at bottom, got %q", screen.Get(0, 24))
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	// Rocket at x 100..150, y 250..300 maps to columns 13..19, rows 11..12
	if c := screen.GetCell(13, 11); c.Rune != RocketBodyChar || c.Color != core.ColorPink {
		t.Errorf("rocket body missing at (13, 11): %+v", c)
	}
	if screen.Get(19, 12) != RocketNoseChar {
		t.Errorf("level rocket should point its nose from the middle row, got %q", screen.Get(19, 12))
	}
	if strings.Contains(screen.String(), "START GAME") {
		t.Error("title panel should be hidden while playing")
	}

	// Climbing tilts the nose up
	g.Handle(core.ActionActivate)
	g.Render(screen)
	if screen.Get(19, 11) != RocketNoseChar {
		t.Errorf("climbing rocket should point its nose from the top row, got %q", screen.Get(19, 11))
	}
}

func TestRenderObstacle(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)
	g.state.Obstacles = []Obstacle{{X: 300, GapTop: 200}, {X: 600, GapTop: 200}}

	screen := core.NewScreen(60, 25) // 10 world units per column
	g.Render(screen)

	// Column 30..37, gap rows 9..16
	if screen.Get(31, 2) != ObstacleChar {
		t.Errorf("upper column missing: %q", screen.Get(31, 2))
	}
	if screen.Get(31, 12) == ObstacleChar {
		t.Error("gap should be open at (31, 12)")
	}
	if screen.Get(31, 20) != ObstacleChar {
		t.Errorf("lower column missing: %q", screen.Get(31, 20))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New(DefaultWorld(), 1, 0)
	g.Handle(core.ActionStart)
	g.state.Score = 3
	for g.State().Phase == PhasePlaying {
		g.Advance()
	}

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 3", "NEW HIGH SCORE", "PLAY AGAIN", "MENU", "High: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen should contain %q:\n%s", want, out)
		}
	}
	for _, r := range []rune{RocketBodyChar, RocketNoseChar, ObstacleChar, MoonChar} {
		if strings.ContainsRune(out, r) {
			t.Errorf("game over screen should not draw the field, found %q:\n%s", r, out)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(DefaultWorld(), 1, 10)
	screen := core.NewScreen(5, 2)
	g.Render(screen) // must not panic
}

func TestStarfield(t *testing.T) {
	a := NewStarfield(100, 42).Stars()
	b := NewStarfield(100, 42).Stars()
	if len(a) != 100 {
		t.Fatalf("stars = %d, expected 100", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave different stars at %d", i)
		}
		s := a[i]
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 || s.Size < 1 || s.Size > 3 {
			t.Errorf("star out of range: %+v", s)
		}
		for f := 0; f < twinklePeriod; f += 7 {
			if br := s.Brightness(f); br < 0.3-1e-9 || br > 1+1e-9 {
				t.Errorf("brightness %v out of [0.3, 1]", br)
			}
		}
	}
}

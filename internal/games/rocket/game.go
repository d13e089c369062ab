package rocket

import (
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Transition describes a phase change caused by input or a tick.
type Transition struct {
	From Phase
	To   Phase
}

// Changed reports whether the phase actually changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// StepResult is returned after input handling or a simulation tick.
type StepResult struct {
	State      State
	Transition Transition
}

// Game owns the live State for a frontend. Frontends are the only holders
// of a *Game and call it from a single goroutine.
type Game struct {
	world  World
	state  State
	rng    *rand.Rand
	stars  *Starfield
	frames int // Render calls, drives the starfield twinkle
}

// New creates an idle game for the given world. The seed drives obstacle
// gaps and the starfield layout.
func New(w World, seed int64, stars int) *Game {
	return &Game{
		world: w,
		state: NewState(w),
		rng:   rand.New(rand.NewSource(seed)),
		stars: NewStarfield(stars, seed),
	}
}

// ID returns the identifier the event journal tags every entry with.
func (g *Game) ID() string {
	return "rocket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Space Bird"
}

// World returns the simulation parameters.
func (g *Game) World() World {
	return g.world
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.clone()
}

// Stars returns the decorative starfield.
func (g *Game) Stars() *Starfield {
	return g.stars
}

// Handle applies a single action immediately. Start, Restart and Menu move
// the state machine; Activate thrusts. Actions that make no sense in the
// current phase are ignored.
func (g *Game) Handle(a core.Action) StepResult {
	from := g.state.Phase
	switch a {
	case core.ActionActivate:
		g.state = Activate(g.state, g.world)
	case core.ActionStart:
		g.state = Start(g.state, g.world)
	case core.ActionRestart:
		g.state = Restart(g.state, g.world)
	case core.ActionMenu:
		g.state = ResetToIdle(g.state, g.world)
	}
	return g.result(from)
}

// Advance runs one simulation tick.
func (g *Game) Advance() StepResult {
	from := g.state.Phase
	g.state = Tick(g.state, g.world, g.rng)
	return g.result(from)
}

// Step applies every action in the frame, then ticks if the round was
// already running. A round that starts this frame gets its first tick on
// the next frame.
func (g *Game) Step(in core.InputFrame) StepResult {
	from := g.state.Phase
	if !in.Empty() {
		for _, a := range []core.Action{core.ActionActivate, core.ActionStart, core.ActionRestart, core.ActionMenu} {
			if in.Has(a) {
				g.Handle(a)
			}
		}
	}
	if from == PhasePlaying && g.state.Phase == PhasePlaying {
		g.state = Tick(g.state, g.world, g.rng)
	}
	return g.result(from)
}

func (g *Game) result(from Phase) StepResult {
	return StepResult{
		State:      g.State(),
		Transition: Transition{From: from, To: g.state.Phase},
	}
}

// Snapshot captures the state for determinism checks and logging.
type Snapshot struct {
	Phase     Phase
	Ticks     int
	Score     int
	HighScore int
	Y         float64
	Velocity  float64
	Obstacles int
	Cause     EndCause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:     g.state.Phase,
		Ticks:     g.state.Ticks,
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Y:         g.state.Bird.Y,
		Velocity:  g.state.Bird.Velocity,
		Obstacles: len(g.state.Obstacles),
		Cause:     g.state.Cause,
	}
}

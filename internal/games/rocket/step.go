package rocket

// Tick advances a playing state by one frame and returns the next state.
// Any other phase is returned unchanged.
//
// Order: physics, bound check, obstacle advance and scoring, cull,
// replenish, collision. Collision uses the rocket position after this
// tick's physics and the obstacles after this tick's scroll.
func Tick(s State, w World, rng Rand) State {
	if s.Phase != PhasePlaying {
		return s
	}

	next := s.clone()
	next.Ticks++

	next.Bird = Integrate(next.Bird, w.Gravity)
	if OutOfBounds(next.Bird.Y, w.BoundHeight) {
		return endRound(next, CauseBounds)
	}

	var passed int
	next.Obstacles, passed = Advance(next.Obstacles, w)
	next.Score += passed
	next.Obstacles = Cull(next.Obstacles, w.ObstacleWidth)
	next.Obstacles = Replenish(next.Obstacles, w, rng)

	if Collides(next.Bird.Y, next.Obstacles, w) {
		return endRound(next, CauseCollision)
	}
	return next
}

// Start begins a round from the title screen.
func Start(s State, w World) State {
	if s.Phase != PhaseIdle {
		return s
	}
	return begin(s, w)
}

// Restart begins a new round straight from game over.
func Restart(s State, w World) State {
	if s.Phase != PhaseGameOver {
		return s
	}
	return begin(s, w)
}

// ResetToIdle leaves game over for the title screen. Round state is
// cleared; the high score is kept.
func ResetToIdle(s State, w World) State {
	if s.Phase != PhaseGameOver {
		return s
	}
	return State{
		Phase:     PhaseIdle,
		Bird:      Bird{Y: w.InitialY},
		HighScore: s.HighScore,
	}
}

func begin(s State, w World) State {
	return State{
		Phase:     PhasePlaying,
		Bird:      Bird{Y: w.InitialY},
		Obstacles: SeedObstacles(w),
		HighScore: s.HighScore,
	}
}

func endRound(s State, cause EndCause) State {
	s.Phase = PhaseGameOver
	s.Cause = cause
	s.RecordBroken = s.Score > s.HighScore
	if s.RecordBroken {
		s.HighScore = s.Score
	}
	return s
}

package rocket

import (
	"math/rand"
	"testing"
)

func TestFirstTickScenario(t *testing.T) {
	w := DefaultWorld()
	s := Start(NewState(w), w)

	if len(s.Obstacles) != 2 || s.Obstacles[0].X != 600 || s.Obstacles[1].X != 900 {
		t.Fatalf("unexpected seed obstacles: %+v", s.Obstacles)
	}
	if s.Bird != (Bird{Y: 250, Velocity: 0}) {
		t.Fatalf("unexpected start bird: %+v", s.Bird)
	}

	s = Tick(s, w, &fixedRand{vals: []float64{0.5}})

	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", s.Phase)
	}
	if !approx(s.Bird.Velocity, 0.6) || !approx(s.Bird.Y, 250.6) {
		t.Errorf("bird = %+v, expected y=250.6 v=0.6", s.Bird)
	}
	if s.Obstacles[0].X != 597 || s.Obstacles[1].X != 897 {
		t.Errorf("obstacles = %+v, expected x 597 and 897", s.Obstacles)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Score)
	}
	if s.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", s.Ticks)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	w := DefaultWorld()
	s := Start(NewState(w), w)
	_ = Tick(s, w, &fixedRand{vals: []float64{0.5}})

	if s.Obstacles[0].X != 600 || s.Bird.Y != 250 || s.Ticks != 0 {
		t.Errorf("Tick modified its input state: %+v", s)
	}
}

func TestTickIgnoredOutsidePlaying(t *testing.T) {
	w := DefaultWorld()
	rng := &fixedRand{vals: []float64{0.5}}

	idle := NewState(w)
	if got := Tick(idle, w, rng); got.Bird != idle.Bird || got.Ticks != 0 {
		t.Errorf("idle state changed on tick: %+v", got)
	}

	over := State{Phase: PhaseGameOver, Bird: Bird{Y: 300, Velocity: 2}, Score: 4, HighScore: 4}
	if got := Tick(over, w, rng); got.Bird != over.Bird || got.Phase != PhaseGameOver {
		t.Errorf("game over state changed on tick: %+v", got)
	}
}

func TestBoundsEndRound(t *testing.T) {
	w := DefaultWorld()
	rng := &fixedRand{vals: []float64{0.5}}

	tests := []struct {
		name      string
		bird      Bird
		score     int
		high      int
		wantHigh  int
		wantFinal float64
	}{
		{"floor, score beats high", Bird{Y: 549.5, Velocity: 0.5}, 7, 5, 7, 550.6},
		{"floor, score below high", Bird{Y: 549.5, Velocity: 0.5}, 3, 5, 5, 550.6},
		{"ceiling", Bird{Y: 0.5, Velocity: -10}, 2, 0, 2, -8.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playing(tc.bird, Obstacle{X: 600, GapTop: 200}, Obstacle{X: 900, GapTop: 300})
			s.Score = tc.score
			s.HighScore = tc.high

			got := Tick(s, w, rng)
			if got.Phase != PhaseGameOver {
				t.Fatalf("phase = %s, expected game_over", got.Phase)
			}
			if got.Cause != CauseBounds {
				t.Errorf("cause = %s, expected out_of_bounds", got.Cause)
			}
			if got.HighScore != tc.wantHigh {
				t.Errorf("high score = %d, expected %d", got.HighScore, tc.wantHigh)
			}
			if !approx(got.Bird.Y, tc.wantFinal) {
				t.Errorf("final y = %v, expected %v", got.Bird.Y, tc.wantFinal)
			}
			// Obstacles freeze on the tick the round ends
			if got.Obstacles[0].X != 600 {
				t.Errorf("obstacles moved on a bound violation: %+v", got.Obstacles)
			}
		})
	}
}

func TestCullAndReplenishScenario(t *testing.T) {
	w := DefaultWorld()
	s := playing(Bird{Y: 250},
		Obstacle{X: -158, GapTop: 200, Passed: true}, // x+width < -width after scrolling
		Obstacle{X: 300, GapTop: 200},
	)

	got := Tick(s, w, &fixedRand{vals: []float64{0.25}})
	if got.Phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", got.Phase)
	}
	if len(got.Obstacles) != 2 {
		t.Fatalf("obstacles = %d, expected 2", len(got.Obstacles))
	}
	if got.Obstacles[0].X != 297 {
		t.Errorf("surviving obstacle x = %v, expected 297", got.Obstacles[0].X)
	}
	spawned := got.Obstacles[1]
	if spawned.X != 600 || spawned.GapTop != 175 || spawned.Passed {
		t.Errorf("spawned obstacle = %+v, expected {600 175 false}", spawned)
	}
	if got.Score != 0 {
		t.Errorf("culling must not score, got %d", got.Score)
	}
}

func TestScoreOncePerObstacle(t *testing.T) {
	w := DefaultWorld()
	rng := &fixedRand{vals: []float64{0.5}}
	s := playing(Bird{Y: 250}, Obstacle{X: 22, GapTop: 200}, Obstacle{X: 400, GapTop: 200})

	s = Tick(s, w, rng)
	if s.Score != 1 || !s.Obstacles[0].Passed {
		t.Fatalf("score = %d passed = %v, expected 1 and true", s.Score, s.Obstacles[0].Passed)
	}

	for i := 0; i < 5; i++ {
		s = Tick(s, w, rng)
	}
	if s.Score != 1 {
		t.Errorf("score = %d after more ticks, expected it to stay 1", s.Score)
	}
}

func TestCollisionEndsRound(t *testing.T) {
	w := DefaultWorld()
	s := playing(Bird{Y: 250}, Obstacle{X: 103, GapTop: 0}, Obstacle{X: 500, GapTop: 200})
	s.Score = 3
	s.HighScore = 1

	got := Tick(s, w, &fixedRand{vals: []float64{0.5}})
	if got.Phase != PhaseGameOver || got.Cause != CauseCollision {
		t.Fatalf("phase = %s cause = %s, expected game_over by collision", got.Phase, got.Cause)
	}
	if got.HighScore != 3 {
		t.Errorf("high score = %d, expected 3", got.HighScore)
	}
	if !got.NewHighScore() {
		t.Error("NewHighScore should report the beaten record")
	}
	if !got.RecordBroken {
		t.Error("RecordBroken should be set when the score beats the high score")
	}
}

func TestCollisionUsesPostPhysicsPosition(t *testing.T) {
	w := DefaultWorld()
	// Before gravity the rocket bottom is 399.8, inside the gap [200, 400].
	// After gravity it is 400.4, below the gap.
	s := playing(Bird{Y: 349.8}, Obstacle{X: 93, GapTop: 200}, Obstacle{X: 500, GapTop: 200})

	got := Tick(s, w, &fixedRand{vals: []float64{0.5}})
	if got.Phase != PhaseGameOver || got.Cause != CauseCollision {
		t.Errorf("phase = %s cause = %s, expected collision against the updated position", got.Phase, got.Cause)
	}
}

func TestStateMachine(t *testing.T) {
	w := DefaultWorld()
	s := NewState(w)

	if Restart(s, w).Phase != PhaseIdle {
		t.Error("restart from idle should be ignored")
	}
	if ResetToIdle(s, w).Phase != PhaseIdle {
		t.Error("reset from idle should stay idle")
	}

	s = Start(s, w)
	if s.Phase != PhasePlaying {
		t.Fatalf("start: phase = %s", s.Phase)
	}
	if Start(s, w).Obstacles[0].X != s.Obstacles[0].X {
		t.Error("start while playing should be ignored")
	}
	if ResetToIdle(s, w).Phase != PhasePlaying {
		t.Error("reset while playing should be ignored")
	}

	s.Score = 4
	s = endRound(s, CauseCollision)
	if s.Phase != PhaseGameOver || s.HighScore != 4 {
		t.Fatalf("end round: %+v", s)
	}

	restarted := Restart(s, w)
	if restarted.Phase != PhasePlaying || restarted.Score != 0 || restarted.HighScore != 4 {
		t.Errorf("restart: phase=%s score=%d high=%d", restarted.Phase, restarted.Score, restarted.HighScore)
	}
	if restarted.Bird != (Bird{Y: w.InitialY}) || len(restarted.Obstacles) != 2 || restarted.Cause != CauseNone {
		t.Errorf("restart did not reset round state: %+v", restarted)
	}

	idle := ResetToIdle(s, w)
	if idle.Phase != PhaseIdle || idle.Score != 0 || idle.HighScore != 4 || len(idle.Obstacles) != 0 {
		t.Errorf("reset: %+v", idle)
	}
}

// autopilot thrusts when the rocket sinks below the next gap's centre.
func autopilot(s State, w World) bool {
	for _, o := range s.Obstacles {
		if o.X+w.ObstacleWidth < w.RocketX {
			continue
		}
		target := o.GapTop + w.GapSize/2 - w.RocketSize/2
		return s.Bird.Y > target && s.Bird.Velocity > 0
	}
	return false
}

func TestRulesHoldOverManyRounds(t *testing.T) {
	w := DefaultWorld()
	gaps := rand.New(rand.NewSource(7))
	noise := rand.New(rand.NewSource(11))

	s := NewState(w)
	prevHigh := 0
	for round := 0; round < 30; round++ {
		if s.Phase == PhaseIdle {
			s = Start(s, w)
		} else {
			s = Restart(s, w)
		}

		for tick := 0; tick < 5000 && s.Phase == PhasePlaying; tick++ {
			if autopilot(s, w) || noise.Intn(40) == 0 {
				s = Activate(s, w)
			}

			prev := s
			s = Tick(s, w, gaps)

			if s.Score < prev.Score || s.Score > prev.Score+1 {
				t.Fatalf("round %d tick %d: score jumped %d -> %d", round, tick, prev.Score, s.Score)
			}
			if s.HighScore < prev.HighScore {
				t.Fatalf("round %d tick %d: high score decreased", round, tick)
			}
			if s.Phase == PhasePlaying && len(s.Obstacles) < w.MinObstacles {
				t.Fatalf("round %d tick %d: only %d obstacles", round, tick, len(s.Obstacles))
			}
			if s.Phase == PhasePlaying && !approx(s.Bird.Y, prev.Bird.Y+prev.Bird.Velocity+w.Gravity) {
				t.Fatalf("round %d tick %d: integration mismatch", round, tick)
			}
		}

		if s.HighScore < prevHigh {
			t.Fatalf("round %d: high score decreased %d -> %d", round, prevHigh, s.HighScore)
		}
		prevHigh = s.HighScore

		if round%5 == 4 && s.Phase == PhaseGameOver {
			s = ResetToIdle(s, w)
		}
	}
}

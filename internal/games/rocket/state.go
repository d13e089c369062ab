package rocket

import "slices"

// Phase is the game state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause records why the last round ended.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseBounds
	CauseCollision
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseBounds:
		return "out_of_bounds"
	case CauseCollision:
		return "collision"
	default:
		return "none"
	}
}

// Bird is the player-controlled rocket. Y is the top of its hitbox.
type Bird struct {
	Y        float64
	Velocity float64
}

// Obstacle is a column with a passable gap [GapTop, GapTop+GapSize].
// Passed flips to true once, when the column's trailing edge clears the rocket.
type Obstacle struct {
	X      float64
	GapTop float64
	Passed bool
}

// State is everything that changes while the game runs.
// HighScore survives rounds; everything else is per round.
type State struct {
	Phase     Phase
	Bird      Bird
	Obstacles []Obstacle
	Score     int
	HighScore int
	Ticks     int
	Cause     EndCause

	// RecordBroken is set when the finished round scored strictly above
	// the previous high score.
	RecordBroken bool
}

// NewState returns an idle state with the rocket at its spawn height.
func NewState(w World) State {
	return State{
		Phase: PhaseIdle,
		Bird:  Bird{Y: w.InitialY},
	}
}

// NewHighScore reports whether the finished round reached the high score.
// A round that only ties the record counts; see RecordBroken for the
// strict check.
func (s State) NewHighScore() bool {
	return s.Phase == PhaseGameOver && s.Score > 0 && s.Score == s.HighScore
}

// clone returns a copy that shares no obstacle storage with s.
func (s State) clone() State {
	s.Obstacles = slices.Clone(s.Obstacles)
	return s
}

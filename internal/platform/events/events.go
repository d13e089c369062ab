// Package events writes round lifecycle events to the game log. Both
// frontends report the results of input handling and ticks through it.
package events

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

// Journal logs phase transitions of one game.
type Journal struct {
	logger *log.Logger
	rounds int
}

// NewJournal returns a journal writing to logger, tagging every entry with
// the game ID. A nil logger discards.
func NewJournal(logger *log.Logger, game string) *Journal {
	if logger != nil {
		logger = logger.With("game", game)
	}
	return &Journal{logger: logger}
}

// Rounds returns the number of rounds started so far.
func (j *Journal) Rounds() int {
	return j.rounds
}

// Record logs the transition in r, if any.
func (j *Journal) Record(r rocket.StepResult) {
	if !r.Transition.Changed() {
		return
	}
	s := r.State

	switch r.Transition.To {
	case rocket.PhasePlaying:
		j.rounds++
		j.info("round started", "round", j.rounds, "from", r.Transition.From, "high", s.HighScore)
	case rocket.PhaseGameOver:
		j.info("round ended",
			"round", j.rounds,
			"score", s.Score,
			"high", s.HighScore,
			"cause", s.Cause,
			"ticks", s.Ticks,
		)
		if s.RecordBroken {
			j.info("new high score", "score", s.Score)
		}
	case rocket.PhaseIdle:
		j.debug("back to title", "high", s.HighScore)
	}
}

func (j *Journal) info(msg string, kv ...any) {
	if j.logger != nil {
		j.logger.Info(msg, kv...)
	}
}

func (j *Journal) debug(msg string, kv ...any) {
	if j.logger != nil {
		j.logger.Debug(msg, kv...)
	}
}

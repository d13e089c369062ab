// Package rocket implements the Flappy Space Bird game: a rocket under
// gravity must thrust through a stream of scrolling gap obstacles.
//
// The simulation is a set of pure steps over an explicit State value.
// Tick runs them in a fixed order; Game wraps a State for the frontends.
package rocket

import "github.com/vovakirdan/rocket-arcade/internal/config"

// World holds the fixed parameters of the simulation, in world units
// (pixels of the play field) and per-tick rates.
type World struct {
	Gravity   float64
	JumpForce float64
	GameSpeed float64

	Width       float64
	Height      float64
	BoundHeight float64

	RocketX    float64
	RocketSize float64
	InitialY   float64

	ObstacleWidth float64
	GapSize       float64
	SpawnX        float64
	GapMin        float64
	GapRange      float64
	MinObstacles  int
	Seed          []Obstacle
}

// NewWorld builds simulation parameters from configuration.
func NewWorld(cfg config.RocketConfig) World {
	seed := make([]Obstacle, 0, len(cfg.Obstacles.Seed))
	for _, s := range cfg.Obstacles.Seed {
		seed = append(seed, Obstacle{X: s.X, GapTop: s.GapTop})
	}

	return World{
		Gravity:       cfg.Physics.Gravity,
		JumpForce:     cfg.Physics.JumpForce,
		GameSpeed:     cfg.Physics.GameSpeed,
		Width:         cfg.Field.Width,
		Height:        cfg.Field.Height,
		BoundHeight:   cfg.Field.BoundHeight,
		RocketX:       cfg.Rocket.X,
		RocketSize:    cfg.Rocket.Size,
		InitialY:      cfg.Rocket.InitialY,
		ObstacleWidth: cfg.Obstacles.Width,
		GapSize:       cfg.Obstacles.GapSize,
		SpawnX:        cfg.Obstacles.SpawnX,
		GapMin:        cfg.Obstacles.GapMin,
		GapRange:      cfg.Obstacles.GapRange,
		MinObstacles:  cfg.Obstacles.MinCount,
		Seed:          seed,
	}
}

// DefaultWorld returns the world built from the default configuration.
func DefaultWorld() World {
	return NewWorld(config.DefaultRocketConfig())
}

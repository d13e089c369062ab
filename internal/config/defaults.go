package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the built-in tuning. It mirrors
// defaults/rocket.yaml and is used when the embedded file cannot be parsed.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Physics: RocketPhysics{
			Gravity:   0.6,
			JumpForce: -10,
			GameSpeed: 3,
		},
		Field: RocketField{
			Width:       600,
			Height:      600,
			BoundHeight: 550,
		},
		Rocket: RocketBody{
			X:        100,
			Size:     50,
			InitialY: 250,
		},
		Obstacles: RocketObstacles{
			Width:    80,
			GapSize:  200,
			SpawnX:   600,
			GapMin:   100,
			GapRange: 300,
			MinCount: 2,
			Seed: []ObstacleSeed{
				{X: 600, GapTop: 200},
				{X: 900, GapTop: 300},
			},
		},
		Display: RocketDisplay{
			TickRate: 60,
			Stars:    100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRocketYAML
}

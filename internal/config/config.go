// Package config provides YAML-based tuning for the rocket game: world
// geometry, physics constants, the obstacle stream and display settings.
package config

import (
	"errors"
	"fmt"
)

// RocketConfig contains all configuration for the rocket game.
// Distances are in world units (pixels of a 600x600 play field by default),
// speeds and accelerations are per tick.
type RocketConfig struct {
	Physics   RocketPhysics   `yaml:"physics"`
	Field     RocketField     `yaml:"field"`
	Rocket    RocketBody      `yaml:"rocket"`
	Obstacles RocketObstacles `yaml:"obstacles"`
	Display   RocketDisplay   `yaml:"display"`
}

// RocketPhysics defines the motion constants.
type RocketPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
	GameSpeed float64 `yaml:"game_speed"` // Obstacle scroll per tick
}

// RocketField defines the play field dimensions.
type RocketField struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BoundHeight float64 `yaml:"bound_height"` // Rocket y at or beyond this ends the round
}

// RocketBody defines the rocket hitbox and spawn position.
type RocketBody struct {
	X        float64 `yaml:"x"`
	Size     float64 `yaml:"size"`
	InitialY float64 `yaml:"initial_y"`
}

// ObstacleSeed is one obstacle of the layout every round starts with.
type ObstacleSeed struct {
	X      float64 `yaml:"x"`
	GapTop float64 `yaml:"gap_top"`
}

// RocketObstacles defines the obstacle stream.
type RocketObstacles struct {
	Width    float64        `yaml:"width"`
	GapSize  float64        `yaml:"gap_size"`
	SpawnX   float64        `yaml:"spawn_x"`
	GapMin   float64        `yaml:"gap_min"`   // Lowest random gap top
	GapRange float64        `yaml:"gap_range"` // Gap top is drawn from [gap_min, gap_min+gap_range)
	MinCount int            `yaml:"min_count"`
	Seed     []ObstacleSeed `yaml:"seed"`
}

// RocketDisplay defines presentation settings.
type RocketDisplay struct {
	TickRate int `yaml:"tick_rate"`
	Stars    int `yaml:"stars"`
}

// Validate reports every setting that would make the game unplayable.
func (c RocketConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce < 0, "physics.jump_force must be negative, got %v", c.Physics.JumpForce)
	check(c.Physics.GameSpeed > 0, "physics.game_speed must be positive, got %v", c.Physics.GameSpeed)

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Field.BoundHeight > 0 && c.Field.BoundHeight <= c.Field.Height,
		"field.bound_height must be in (0, field.height], got %v", c.Field.BoundHeight)

	check(c.Rocket.Size > 0, "rocket.size must be positive, got %v", c.Rocket.Size)
	check(c.Rocket.X >= 0 && c.Rocket.X+c.Rocket.Size <= c.Field.Width,
		"rocket.x must keep the rocket inside the field, got %v", c.Rocket.X)
	check(c.Rocket.InitialY > 0 && c.Rocket.InitialY < c.Field.BoundHeight,
		"rocket.initial_y must be in (0, field.bound_height), got %v", c.Rocket.InitialY)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapSize > c.Rocket.Size,
		"obstacles.gap_size must exceed rocket.size, got %v", c.Obstacles.GapSize)
	check(c.Obstacles.GapMin >= 0, "obstacles.gap_min must not be negative, got %v", c.Obstacles.GapMin)
	check(c.Obstacles.GapRange >= 0, "obstacles.gap_range must not be negative, got %v", c.Obstacles.GapRange)
	check(c.Obstacles.MinCount >= 2, "obstacles.min_count must be at least 2, got %d", c.Obstacles.MinCount)
	check(len(c.Obstacles.Seed) >= c.Obstacles.MinCount,
		"obstacles.seed needs at least %d entries, got %d", c.Obstacles.MinCount, len(c.Obstacles.Seed))

	check(c.Display.TickRate > 0, "display.tick_rate must be positive, got %d", c.Display.TickRate)
	check(c.Display.Stars >= 0, "display.stars must not be negative, got %d", c.Display.Stars)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

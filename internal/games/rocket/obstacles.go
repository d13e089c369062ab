package rocket

import "slices"

// Rand is the randomness the obstacle stream needs. *math/rand.Rand
// satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// SeedObstacles returns a fresh copy of the layout every round starts with.
func SeedObstacles(w World) []Obstacle {
	out := make([]Obstacle, len(w.Seed))
	for i, o := range w.Seed {
		out[i] = Obstacle{X: o.X, GapTop: o.GapTop}
	}
	return out
}

// Advance scrolls every obstacle left by the game speed and marks those whose
// trailing edge has just cleared the rocket. It returns the moved obstacles and
// the number newly passed.
func Advance(obs []Obstacle, w World) ([]Obstacle, int) {
	out := make([]Obstacle, len(obs))
	passed := 0
	for i, o := range obs {
		o.X -= w.GameSpeed
		if !o.Passed && o.X+w.ObstacleWidth < w.RocketX {
			o.Passed = true
			passed++
		}
		out[i] = o
	}
	return out, passed
}

// Cull drops obstacles whose right edge has reached the left boundary.
func Cull(obs []Obstacle, width float64) []Obstacle {
	out := make([]Obstacle, 0, len(obs))
	for _, o := range obs {
		if o.X+width > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Replenish appends obstacles at the spawn line until the stream holds at
// least w.MinObstacles. Gap tops are uniform in [GapMin, GapMin+GapRange).
func Replenish(obs []Obstacle, w World, rng Rand) []Obstacle {
	out := slices.Clip(obs)
	for len(out) < w.MinObstacles {
		out = append(out, Obstacle{
			X:      w.SpawnX,
			GapTop: w.GapMin + rng.Float64()*w.GapRange,
		})
	}
	return out
}

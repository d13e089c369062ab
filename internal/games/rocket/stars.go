package rocket

import (
	"math"
	"math/rand"
)

// Twinkle period in frames.
const twinklePeriod = 120

// Star is a decorative background star. X and Y are fractions of the field.
type Star struct {
	X, Y  float64
	Size  int // 1..3
	Delay int // Twinkle phase offset in frames
}

// Brightness returns the star's brightness in [0.3, 1] at the given frame.
func (s Star) Brightness(frame int) float64 {
	phase := float64((frame+s.Delay)%twinklePeriod) / twinklePeriod
	return 0.65 + 0.35*math.Cos(2*math.Pi*phase)
}

// Starfield is the randomized backdrop. It has its own RNG so it never
// disturbs the obstacle sequence.
type Starfield struct {
	stars []Star
}

// NewStarfield scatters n stars.
func NewStarfield(n int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed5))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64(),
			Y:     rng.Float64(),
			Size:  1 + rng.Intn(3),
			Delay: rng.Intn(twinklePeriod),
		}
	}
	return &Starfield{stars: stars}
}

// Stars returns the stars.
func (f *Starfield) Stars() []Star {
	return f.stars
}

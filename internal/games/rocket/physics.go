package rocket

import "math"

// MaxTilt caps the nose-down rotation of the rocket sprite, in degrees.
const MaxTilt = 30.0

// Integrate applies one tick of gravity: velocity first, then position.
func Integrate(b Bird, gravity float64) Bird {
	b.Velocity += gravity
	b.Y += b.Velocity
	return b
}

// OutOfBounds reports whether a rocket top at y has left the playable range.
func OutOfBounds(y, boundHeight float64) bool {
	return y <= 0 || y >= boundHeight
}

// Activate thrusts the rocket. The velocity is replaced, not added to,
// so repeated presses never stack. No effect outside PhasePlaying.
func Activate(s State, w World) State {
	if s.Phase != PhasePlaying {
		return s
	}
	s.Bird.Velocity = w.JumpForce
	return s
}

// Tilt returns the sprite rotation in degrees for a vertical velocity.
// Negative tilts the nose up.
func Tilt(velocity float64) float64 {
	return math.Min(velocity*3, MaxTilt)
}

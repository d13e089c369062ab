package rocket

import "math"

// fixedRand replays a fixed sequence of values.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// playing returns a playing state with the given rocket and obstacles.
func playing(b Bird, obs ...Obstacle) State {
	return State{
		Phase:     PhasePlaying,
		Bird:      b,
		Obstacles: obs,
	}
}

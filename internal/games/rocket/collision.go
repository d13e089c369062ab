package rocket

import "github.com/vovakirdan/rocket-arcade/internal/core"

// Collides reports whether a rocket whose hitbox top is at y touches a solid
// part of any obstacle. Only columns that horizontally overlap the rocket are
// considered; inside those, the rocket must sit fully within the gap.
func Collides(y float64, obs []Obstacle, w World) bool {
	rocket := core.NewSpan(w.RocketX, w.RocketSize)
	top, bottom := y, y+w.RocketSize

	for _, o := range obs {
		if !rocket.Overlaps(core.NewSpan(o.X, w.ObstacleWidth)) {
			continue
		}
		if top < o.GapTop || bottom > o.GapTop+w.GapSize {
			return true
		}
	}
	return false
}

package flappy

// Collides reports whether the body touches either pipe of o.
func Collides(p Body, o Obstacle) bool {
	aboveGap := p.Y < o.GapTop()
	belowGap := p.Bottom() > o.YBottom

	// Probe edge meets the leading edge while outside the gap.
	if p.Forehead == o.X && (aboveGap || belowGap) {
		return true
	}
	// Head inside the top pipe while overlapping horizontally.
	if aboveGap && p.Forehead > o.X && p.X <= o.TrailingEdge() {
		return true
	}
	// Feet inside the bottom pipe while the probe is within the pipe.
	if belowGap && p.Forehead > o.X && p.Forehead <= o.TrailingEdge() {
		return true
	}
	return false
}

// HitsFloor reports whether the body reached the ground line.
func HitsFloor(p Body, floorY float64) bool {
	return p.Bottom() >= floorY
}

// Detect reports whether the body hits the floor or any obstacle.
func Detect(p Body, obstacles []Obstacle, floorY float64) bool {
	if HitsFloor(p, floorY) {
		return true
	}
	for _, o := range obstacles {
		if Collides(p, o) {
			return true
		}
	}
	return false
}

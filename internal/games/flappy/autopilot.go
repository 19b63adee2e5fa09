package flappy

// autopilotMargin keeps the body this far above the bottom pipe.
const autopilotMargin = 8

// Autopilot returns an input hook that flaps for s whenever the body sinks
// toward the bottom of the next gap and a flap would not hit the top pipe.
// Use it with BeforeNext.
func Autopilot(s *Session) func() {
	impulse := s.cfg.Physics.JumpImpulse
	return func() {
		p := s.Player()

		target, ok := nextObstacle(p, s.queue.Obstacles())
		if !ok {
			if p.Bottom()+autopilotMargin >= s.FloorY() {
				s.Jump()
			}
			return
		}

		if p.Bottom() > target.YBottom-autopilotMargin && p.Y-impulse > target.GapTop() {
			s.Jump()
		}
	}
}

// nextObstacle returns the first obstacle the body has not fully passed.
func nextObstacle(p Body, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if p.X <= o.TrailingEdge() {
			return o, true
		}
	}
	return Obstacle{}, false
}

package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a pipe pair scrolling right to left.
type Obstacle struct {
	X       float64 // Left edge, decremented every frame
	YTop    float64 // Top pipe's offset; negative values extend above the field
	YBottom float64 // Bottom pipe's offset: YTop + Height + gap
	Width   float64
	Height  float64
}

// GapTop returns the y of the top pipe's lower edge.
func (o Obstacle) GapTop() float64 {
	return o.YTop + o.Height
}

// TrailingEdge returns the x of the obstacle's right edge.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.Width
}

// Generator produces obstacles with a random gap position.
type Generator struct {
	cfg config.FlappyObstacles
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.FlappyObstacles, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate returns an obstacle at the default spawn x.
func (g *Generator) Generate() Obstacle {
	return g.GenerateAt(g.cfg.SpawnX)
}

// GenerateAt returns an obstacle at x. Sessions use it for their first
// obstacle, which starts closer than the default spawn point.
//
// YTop is a whole number in [TopMin, TopMax). The range is narrower than
// [-Height, 0) so the top pipe always shows on screen.
func (g *Generator) GenerateAt(x float64) Obstacle {
	span := g.cfg.TopMax - g.cfg.TopMin
	yTop := float64(g.cfg.TopMin + g.rng.Intn(span))
	return Obstacle{
		X:       x,
		YTop:    yTop,
		YBottom: yTop + g.cfg.Height + g.cfg.Gap,
		Width:   g.cfg.Width,
		Height:  g.cfg.Height,
	}
}

// Queue holds the live obstacles, oldest (leftmost) first.
type Queue struct {
	items []Obstacle
	gen   *Generator
	cfg   config.FlappyObstacles
	speed float64
}

// NewQueue creates an empty queue that scrolls speed units per frame.
func NewQueue(gen *Generator, cfg config.FlappyObstacles, speed float64) *Queue {
	return &Queue{
		items: make([]Obstacle, 0, cfg.MaxLive),
		gen:   gen,
		cfg:   cfg,
		speed: speed,
	}
}

// Push appends o unconditionally. Used to seed a session's first obstacle.
func (q *Queue) Push(o Obstacle) {
	q.items = append(q.items, o)
}

// Len returns the number of live obstacles.
func (q *Queue) Len() int {
	return len(q.items)
}

// Head returns the oldest obstacle.
func (q *Queue) Head() (Obstacle, bool) {
	if len(q.items) == 0 {
		return Obstacle{}, false
	}
	return q.items[0], true
}

// Obstacles returns the live obstacles. The slice is owned by the queue.
func (q *Queue) Obstacles() []Obstacle {
	return q.items
}

// Spawn appends a freshly generated obstacle when the head has crossed the
// spawn threshold and fewer than MaxLive obstacles are live.
// It reports whether an obstacle was appended.
func (q *Queue) Spawn() bool {
	head, ok := q.Head()
	if !ok || head.X >= q.cfg.SpawnThreshold || len(q.items) >= q.cfg.MaxLive {
		return false
	}
	q.items = append(q.items, q.gen.Generate())
	return true
}

// Recycle runs the per-frame spawn, removal and scoring pass, in that order.
// It reports whether the head obstacle crossed the score line this frame.
func (q *Queue) Recycle() bool {
	if len(q.items) == 0 {
		q.items = append(q.items, q.gen.Generate())
	}

	q.Spawn()

	if q.items[0].X < -q.cfg.Width {
		q.items = append(q.items[:0], q.items[1:]...)
		if len(q.items) == 0 {
			q.items = append(q.items, q.gen.Generate())
		}
	}

	// The trailing edge moves speed units per frame, so it lands in this
	// window on exactly one frame. At speed 1 on whole positions this is
	// the same as edge == ScoreLine.
	edge := q.items[0].TrailingEdge()
	return edge <= q.cfg.ScoreLine && edge > q.cfg.ScoreLine-q.speed
}

// Scroll moves every obstacle left by one frame's worth.
func (q *Queue) Scroll() {
	for i := range q.items {
		q.items[i].X -= q.speed
	}
}

// Package flappy implements the flappy simulation: a sprite falls a fixed
// distance every frame, jumps by a fixed impulse, and must pass through the
// gaps of a stream of scrolling pipe pairs.
//
// A Session owns all game state. Platforms drive it one frame at a time with
// Step, forward input with Jump, and watch Done for the end of the session.
package flappy

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID identifies this game in score storage.
const GameID = "flappy"

// State is the session's run state.
type State int

const (
	StateRunning State = iota
	StatePaused        // Entered on the first collision; never left
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the renderer frames are drawn to.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithAudio sets the sink sound effects are played on.
func WithAudio(a AudioSink) Option {
	return func(s *Session) {
		s.audio = a
	}
}

type sessionSprites struct {
	background assets.Sprite
	ground     assets.Sprite
	pipeTop    assets.Sprite
	pipeBottom assets.Sprite
	player     assets.Sprite
}

// Session is one run from the first frame to the first collision.
// It is not safe for concurrent use; platforms call Step and Jump from a
// single goroutine.
type Session struct {
	cfg      config.FlappyConfig
	sprites  sessionSprites
	player   Body
	queue    *Queue
	floorY   float64
	score    int
	state    State
	frame    int
	renderer Renderer
	audio    AudioSink
	ended    chan struct{}
}

// NewSession creates a running session. sprites must contain every name in
// cfg.ImageNames(); the RNG is seeded with seed.
func NewSession(cfg config.FlappyConfig, seed int64, sprites assets.Sprites, opts ...Option) (*Session, error) {
	lookup := func(name string) (assets.Sprite, error) {
		sp, ok := sprites[name]
		if !ok {
			return assets.Sprite{}, fmt.Errorf("flappy: sprite %q not loaded", name)
		}
		return sp, nil
	}

	var set sessionSprites
	for _, slot := range []struct {
		dst  *assets.Sprite
		name string
	}{
		{&set.background, cfg.Field.Background},
		{&set.ground, cfg.Field.Ground},
		{&set.pipeTop, cfg.Field.PipeTop},
		{&set.pipeBottom, cfg.Field.PipeBottom},
		{&set.player, cfg.Player.Sprite},
	} {
		sp, err := lookup(slot.name)
		if err != nil {
			return nil, err
		}
		*slot.dst = sp
	}

	gen := NewGenerator(cfg.Obstacles, rand.New(rand.NewSource(seed)))
	queue := NewQueue(gen, cfg.Obstacles, cfg.Physics.ScrollSpeed)
	queue.Push(gen.GenerateAt(cfg.Obstacles.FirstSpawnX))

	s := &Session{
		cfg:      cfg,
		sprites:  set,
		player:   NewBody(cfg.Player.X, cfg.Player.Y, set.player, cfg.Physics.JumpImpulse),
		queue:    queue,
		floorY:   cfg.Field.Height - set.ground.Height,
		state:    StateRunning,
		renderer: nopRenderer{},
		audio:    nopAudio{},
		ended:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Jump applies the jump impulse immediately. Jumps after the session ended
// are ignored.
func (s *Session) Jump() {
	if s.state != StateRunning {
		return
	}
	s.player.Jump()
}

// Step simulates and draws one frame. Once paused it does nothing.
func (s *Session) Step() core.StepResult {
	if s.state != StateRunning {
		return core.StepResult{State: s.GameState()}
	}

	s.frame++
	var res core.StepResult

	s.renderer.DrawImage(s.sprites.background, 0, 0)
	s.renderer.DrawImage(s.sprites.player, s.player.X, s.player.Y)
	s.player.Y += s.cfg.Physics.Gravity

	if s.queue.Recycle() {
		s.score++
		res.Scored = true
		s.audio.Play(SoundSucceed)
	}

	for _, o := range s.queue.Obstacles() {
		s.renderer.DrawImage(s.sprites.pipeTop, o.X, o.YTop)
		s.renderer.DrawImage(s.sprites.pipeBottom, o.X, o.YBottom)
	}
	s.queue.Scroll()

	if Detect(s.player, s.queue.Obstacles(), s.floorY) {
		s.end()
		res.Collided = true
		s.audio.Play(SoundFail)
	}

	s.renderer.DrawImage(s.sprites.ground, 0, s.cfg.Field.Height-s.sprites.ground.Height)
	s.renderer.FillText(fmt.Sprintf("Score: %d", s.score), s.cfg.Field.ScoreX, s.cfg.Field.ScoreY,
		TextStyle{Color: core.ColorBrightWhite})
	s.renderer.FillText("space / click to flap", s.cfg.Field.HintX, s.cfg.Field.HintY,
		TextStyle{Color: core.ColorWhite, Faint: true})

	res.State = s.GameState()
	return res
}

// end moves the session into its terminal state and signals Done.
func (s *Session) end() {
	s.state = StatePaused
	close(s.ended)
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.ended
}

// State returns the run state.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether the session has ended.
func (s *Session) Paused() bool {
	return s.state == StatePaused
}

// Score returns the number of obstacles passed.
func (s *Session) Score() int {
	return s.score
}

// Frame returns the number of frames simulated.
func (s *Session) Frame() int {
	return s.frame
}

// GameState returns the observable state.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:  s.score,
		Paused: s.state == StatePaused,
		Frame:  s.frame,
	}
}

// Player returns a copy of the player's body.
func (s *Session) Player() Body {
	return s.player
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle {
	return slices.Clone(s.queue.Obstacles())
}

// FloorY returns the y of the ground line.
func (s *Session) FloorY() float64 {
	return s.floorY
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

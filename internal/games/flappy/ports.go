package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sound names a sound effect a session plays.
type Sound string

const (
	SoundFail    Sound = "fail" // First collision
	SoundSucceed Sound = "succ" // Obstacle passed
)

// SoundNames returns the sounds a session plays, for preloading.
func SoundNames() []string {
	return []string{string(SoundFail), string(SoundSucceed)}
}

// TextStyle describes how overlay text is drawn.
type TextStyle struct {
	Color core.Color
	Faint bool
}

// Renderer draws a frame. Coordinates are world units.
type Renderer interface {
	DrawImage(sprite assets.Sprite, x, y float64)
	FillText(text string, x, y float64, style TextStyle)
}

// AudioSink plays sound effects.
type AudioSink interface {
	Play(s Sound)
	Pause(s Sound)
}

type nopRenderer struct{}

func (nopRenderer) DrawImage(assets.Sprite, float64, float64) {}
func (nopRenderer) FillText(string, float64, float64, TextStyle) {}

type nopAudio struct{}

func (nopAudio) Play(Sound) {}
func (nopAudio) Pause(Sound) {}

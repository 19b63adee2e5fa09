package tui

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// BellAudio plays sounds as terminal bells written to w.
// Unknown sounds are silent.
type BellAudio struct {
	w      io.Writer
	sounds assets.Sounds
	muted  bool
}

// NewBellAudio creates a sink writing to w.
func NewBellAudio(w io.Writer, sounds assets.Sounds) *BellAudio {
	return &BellAudio{w: w, sounds: sounds}
}

// Play rings the sound's bells.
func (a *BellAudio) Play(s flappy.Sound) {
	snd, ok := a.sounds[string(s)]
	if !ok || a.muted || snd.Bells == 0 || a.w == nil {
		return
	}
	//nolint:errcheck // Best-effort, a lost bell never fails a frame
	io.WriteString(a.w, strings.Repeat("\a", snd.Bells))
}

// Pause is a no-op: a bell cannot be stopped once rung.
func (a *BellAudio) Pause(flappy.Sound) {}

// SetMuted turns every sound on or off.
func (a *BellAudio) SetMuted(muted bool) {
	a.muted = muted
}

// Muted reports whether the sink is muted.
func (a *BellAudio) Muted() bool {
	return a.muted
}

var _ flappy.AudioSink = (*BellAudio)(nil)

package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestBellAudio(t *testing.T) {
	sounds := assets.Sounds{
		"fail": {Name: "fail", Bells: 2},
		"succ": {Name: "succ", Bells: 1},
	}

	tests := []struct {
		name     string
		muted    bool
		sound    flappy.Sound
		expected string
	}{
		{"succeed rings once", false, flappy.SoundSucceed, "\a"},
		{"fail rings twice", false, flappy.SoundFail, "\a\a"},
		{"muted stays silent", true, flappy.SoundFail, ""},
		{"unknown sound stays silent", false, flappy.Sound("boom"), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			a := NewBellAudio(&buf, sounds)
			a.SetMuted(tc.muted)

			a.Play(tc.sound)
			a.Pause(tc.sound)

			if got := buf.String(); got != tc.expected {
				t.Errorf("wrote %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestBellAudioNilWriter(t *testing.T) {
	a := NewBellAudio(nil, assets.Sounds{"fail": {Name: "fail", Bells: 2}})
	a.Play(flappy.SoundFail) // must not panic
}

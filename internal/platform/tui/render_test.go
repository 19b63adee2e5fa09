package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "score")
	s.DrawTextColored(2, 1, "pipe", core.ColorGreen)
	s.SetColored(11, 2, '#', core.ColorOrange)

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d line breaks, expected 2", n)
	}
	for _, want := range []string{"score", "pipe", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	if got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown colors should render with the default style, got %q", got)
	}
}

package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestCanvasFit(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected core.Rect
	}{
		{"exact fit", 72, 64, core.NewRect(0, 0, 72, 64)},
		{"wide terminal letterboxes sideways", 100, 64, core.NewRect(14, 0, 72, 64)},
		{"tall terminal letterboxes vertically", 72, 80, core.NewRect(0, 8, 72, 64)},
		{"standard terminal", 80, 24, core.NewRect(26, 0, 27, 24)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(core.NewScreen(tc.w, tc.h), 288, 512)
			if got := c.Viewport(); got != tc.expected {
				t.Errorf("Viewport() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestCanvasRefitsAfterResize(t *testing.T) {
	screen := core.NewScreen(72, 64)
	c := NewCanvas(screen, 288, 512)

	screen.Resize(100, 64)
	c.Fit()

	if got := c.Viewport(); got != core.NewRect(14, 0, 72, 64) {
		t.Errorf("Viewport() after resize = %+v", got)
	}
}

func TestCanvasDrawImageLetterbox(t *testing.T) {
	screen := core.NewScreen(100, 64)
	c := NewCanvas(screen, 288, 512)

	c.DrawImage(assets.Sprite{Width: 288, Height: 512, Glyph: '.'}, 0, 0)

	if got := screen.Get(13, 5); got != ' ' {
		t.Errorf("left margin = %q, expected blank", got)
	}
	if got := screen.Get(14, 5); got != '.' {
		t.Errorf("field's first column = %q, expected '.'", got)
	}
	if got := screen.Get(85, 5); got != '.' {
		t.Errorf("field's last column = %q, expected '.'", got)
	}
	if got := screen.Get(86, 5); got != ' ' {
		t.Errorf("right margin = %q, expected blank", got)
	}
}

func TestCanvasDrawImageClipsToField(t *testing.T) {
	screen := core.NewScreen(72, 64)
	c := NewCanvas(screen, 288, 512)
	pipe := assets.Sprite{Width: 52, Height: 242, Glyph: '#', Color: core.ColorGreen}

	// Top pipe reaching above the field and past its right edge.
	c.DrawImage(pipe, 260, -100)

	cell := screen.GetCell(70, 0)
	if cell.Rune != '#' || cell.Color != core.ColorGreen {
		t.Errorf("cell (70, 0) = %+v, expected a green pipe", cell)
	}
	if got := screen.Get(64, 0); got != ' ' {
		t.Errorf("cell left of the pipe = %q, expected blank", got)
	}
	// Bottom edge at y=142 projects to row 17.75.
	if got := screen.Get(70, 17); got != '#' {
		t.Errorf("row 17 = %q, expected the pipe", got)
	}
	if got := screen.Get(70, 18); got != ' ' {
		t.Errorf("row 18 = %q, expected blank", got)
	}
}

func TestCanvasFillText(t *testing.T) {
	screen := core.NewScreen(72, 64)
	c := NewCanvas(screen, 288, 512)

	c.FillText("Score: 3", 10, 485, flappy.TextStyle{Color: core.ColorBrightWhite})
	c.FillText("hint", 80, 505, flappy.TextStyle{Color: core.ColorWhite, Faint: true})

	if got := screen.Row(60)[2:10]; got != "Score: 3" {
		t.Errorf("row 60 = %q, expected the score at column 2", screen.Row(60))
	}
	if cell := screen.GetCell(2, 60); cell.Color != core.ColorBrightWhite {
		t.Errorf("score color = %v, expected bright white", cell.Color)
	}
	if cell := screen.GetCell(20, 63); cell.Rune != 'h' || cell.Color != core.ColorGray {
		t.Errorf("faint hint cell = %+v, expected gray 'h'", cell)
	}
}

func TestCanvasBeginClears(t *testing.T) {
	screen := core.NewScreen(72, 64)
	c := NewCanvas(screen, 288, 512)

	c.DrawImage(assets.Sprite{Width: 288, Height: 512, Glyph: '.'}, 0, 0)
	c.Begin()

	if got := screen.Get(10, 10); got != ' ' {
		t.Errorf("cell after Begin() = %q, expected blank", got)
	}
}

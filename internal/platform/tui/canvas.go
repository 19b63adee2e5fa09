package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2

// Canvas draws world-unit frames onto a Screen.
// The field is scaled uniformly to the largest size that fits and centred;
// cells outside the field are left blank.
type Canvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
	scaleX float64 // Columns per world unit
	scaleY float64 // Rows per world unit
	offX   float64
	offY   float64
	view   core.Rect
}

// NewCanvas creates a canvas projecting a fieldW x fieldH world onto screen.
func NewCanvas(screen *core.Screen, fieldW, fieldH float64) *Canvas {
	c := &Canvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
	c.Fit()
	return c
}

// Fit recomputes the projection for the screen's current size.
func (c *Canvas) Fit() {
	w, h := float64(c.screen.Width()), float64(c.screen.Height())
	s := math.Min(w/c.fieldW, cellAspect*h/c.fieldH)

	c.scaleX = s
	c.scaleY = s / cellAspect
	c.offX = math.Floor((w - c.fieldW*c.scaleX) / 2)
	c.offY = math.Floor((h - c.fieldH*c.scaleY) / 2)
	c.view = core.RectSpan(c.offX, c.offY, c.offX+c.fieldW*c.scaleX, c.offY+c.fieldH*c.scaleY).
		Clip(core.NewRect(0, 0, c.screen.Width(), c.screen.Height()))
}

// Viewport returns the cells the field occupies.
func (c *Canvas) Viewport() core.Rect {
	return c.view
}

// Project maps a world point to fractional cell coordinates.
func (c *Canvas) Project(x, y float64) (col, row float64) {
	return c.offX + x*c.scaleX, c.offY + y*c.scaleY
}

// Begin clears the screen ahead of a frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

// DrawImage fills the sprite's projected box, clipped to the field.
func (c *Canvas) DrawImage(sprite assets.Sprite, x, y float64) {
	x0, y0 := c.Project(x, y)
	x1, y1 := c.Project(x+sprite.Width, y+sprite.Height)
	r := core.RectSpan(x0, y0, x1, y1).Clip(c.view)
	c.screen.FillRect(r, sprite.Glyph, sprite.Color)
}

// FillText writes text with its baseline at the projected anchor. Text
// keeps its cell size, so it may run past the field into the margin.
func (c *Canvas) FillText(text string, x, y float64, style flappy.TextStyle) {
	col, row := c.Project(x, y)
	r := int(math.Floor(row))
	if c.view.H > 0 {
		r = core.Clamp(r, c.view.Y, c.view.Bottom()-1)
	}

	color := style.Color
	if style.Faint {
		color = core.ColorGray
	}
	c.screen.DrawTextColored(int(math.Floor(col)), r, text, color)
}

var _ flappy.Renderer = (*Canvas)(nil)

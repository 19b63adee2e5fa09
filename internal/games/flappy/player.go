package flappy

import "github.com/vovakirdan/tui-flappy/internal/assets"

// Body is the player's sprite position and hitbox.
type Body struct {
	X        float64 // Fixed for the session
	Y        float64
	Width    float64 // From the player sprite
	Height   float64
	Forehead float64 // Right edge probe, X + Width at spawn

	impulse float64
}

// NewBody places a body at (x, y) sized by sprite.
func NewBody(x, y float64, sprite assets.Sprite, impulse float64) Body {
	return Body{
		X:        x,
		Y:        y,
		Width:    sprite.Width,
		Height:   sprite.Height,
		Forehead: x + sprite.Width,
		impulse:  impulse,
	}
}

// Jump moves the body up by the jump impulse. There is no cooldown and no
// velocity: every call has the same effect.
func (b *Body) Jump() {
	b.Y -= b.impulse
}

// Bottom returns the y of the body's lower edge.
func (b Body) Bottom() float64 {
	return b.Y + b.Height
}

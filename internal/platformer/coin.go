package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Coin is an animated pickup. It only animates; the session decides when
// it is collected.
type Coin struct {
	Body
	Frame int

	timer float64
	delay float64
}

// NewCoin creates a coin centred on pos that advances a frame every delay seconds.
func NewCoin(pos core.Vec2, delay float64) *Coin {
	return &Coin{
		Body:  newBody(SpriteCoin, pos),
		delay: delay,
	}
}

// Update advances the spin animation.
func (c *Coin) Update(dt float64) {
	c.timer += dt
	if c.timer >= c.delay {
		c.timer = 0
		c.Frame = (c.Frame + 1) % coinFrames
	}
}

// Sprite returns the current animation frame.
func (c *Coin) Sprite() Sprite {
	return Sprite{Kind: SpriteCoin, Frame: c.Frame}
}

package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	cloudCount    = 5
	cloudMinSpeed = 25.0
	cloudMaxSpeed = 40.0
	cloudMinScale = 0.5
	cloudMaxScale = 1.0
	cloudMinY     = 50
	cloudMaxY     = 200
	cloudWrapOut  = Width + 100 // clouds past this x re-enter from cloudWrapIn
	cloudWrapIn   = -100
	sunRadius     = 40
)

// skyBands are drawn top to bottom to approximate the sky gradient.
var skyBands = []core.Color{core.ColorSkyLight, core.ColorSky, core.ColorSkyDeep}

// Cloud is a decorative cloud drifting to the right.
type Cloud struct {
	Pos   core.Vec2
	Speed float64
	Scale float64
}

// Background is the purely cosmetic scenery behind the level.
type Background struct {
	Clouds []Cloud
	rng    *rand.Rand
}

// NewBackground scatters clouds using rng.
func NewBackground(rng *rand.Rand) *Background {
	b := &Background{
		Clouds: make([]Cloud, cloudCount),
		rng:    rng,
	}
	for i := range b.Clouds {
		b.Clouds[i] = Cloud{Pos: core.V(float64(rng.Intn(Width+1)), 0)}
		b.respawn(&b.Clouds[i])
	}
	return b
}

// respawn gives a cloud a new height, speed and scale, keeping its x.
func (b *Background) respawn(c *Cloud) {
	c.Pos.Y = float64(cloudMinY + b.rng.Intn(cloudMaxY-cloudMinY+1))
	c.Speed = cloudMinSpeed + b.rng.Float64()*(cloudMaxSpeed-cloudMinSpeed)
	c.Scale = cloudMinScale + b.rng.Float64()*(cloudMaxScale-cloudMinScale)
}

// Update drifts the clouds, wrapping them around the left edge.
func (b *Background) Update(dt float64) {
	for i := range b.Clouds {
		c := &b.Clouds[i]
		c.Pos.X += c.Speed * dt
		if c.Pos.X > cloudWrapOut {
			c.Pos.X = cloudWrapIn
			b.respawn(c)
		}
	}
}

// Draw paints sky, sun, clouds and the scenery layers.
func (b *Background) Draw(r Renderer) {
	bandH := float64(Height) / float64(len(skyBands))
	for i, c := range skyBands {
		r.FillRect(core.NewRect(0, float64(i)*bandH, Width, bandH), c)
	}

	r.FillCircle(core.V(Width-100, 100), sunRadius, core.ColorSun)

	for _, c := range b.Clouds {
		radius := 20 * c.Scale
		r.FillCircle(c.Pos, radius, core.ColorBrightWhite)
		r.FillCircle(c.Pos.Add(core.V(-radius, radius/3)), radius*0.8, core.ColorBrightWhite)
		r.FillCircle(c.Pos.Add(core.V(radius, radius/3)), radius*0.8, core.ColorBrightWhite)
	}

	r.DrawSprite(Sprite{Kind: SpriteMountains}, core.V(Width/2, Height-150), false)
	r.DrawSprite(Sprite{Kind: SpriteGround}, core.V(Width/2, Height-50), false)
}

package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {255, 255, 255, 255},
	core.ColorRed:           {200, 40, 40, 255},
	core.ColorGreen:         {40, 160, 60, 255},
	core.ColorYellow:        {220, 190, 40, 255},
	core.ColorBlue:          {0, 100, 200, 255},
	core.ColorMagenta:       {170, 60, 170, 255},
	core.ColorCyan:          {40, 170, 190, 255},
	core.ColorWhite:         {220, 220, 220, 255},
	core.ColorBlack:         {0, 0, 0, 255},
	core.ColorBrightRed:     {255, 80, 80, 255},
	core.ColorBrightGreen:   {90, 230, 90, 255},
	core.ColorBrightYellow:  {255, 225, 60, 255},
	core.ColorBrightBlue:    {90, 150, 255, 255},
	core.ColorBrightMagenta: {230, 100, 230, 255},
	core.ColorBrightCyan:    {100, 230, 240, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {240, 140, 30, 255},
	core.ColorGray:          {120, 120, 130, 255},
	core.ColorBrown:         {120, 80, 40, 255},
	core.ColorSkyLight:      {135, 206, 235, 255},
	core.ColorSky:           {100, 149, 237, 255},
	core.ColorSkyDeep:       {42, 170, 138, 255},
	core.ColorSun:           {255, 255, 190, 255},
}

// rgba maps a palette entry to a colour, white for unknown entries.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// Renderer implements platformer.Renderer on an ebiten image using vector
// shapes in place of sprite art.
type Renderer struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

// NewRenderer loads the UI font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	return &Renderer{font: src}, nil
}

// Target sets the image drawn on by subsequent calls.
func (r *Renderer) Target(dst *ebiten.Image) {
	r.dst = dst
}

func (r *Renderer) Clear(c core.Color) {
	r.dst.Fill(rgba(c))
}

func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	r.rect(rect, rgba(c))
}

func (r *Renderer) rect(rect core.Rect, clr color.Color) {
	vector.DrawFilledRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, true)
}

func (r *Renderer) FillCircle(center core.Vec2, radius float64, c core.Color) {
	vector.DrawFilledCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), rgba(c), true)
}

func (r *Renderer) circle(center core.Vec2, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// DrawSprite draws a flat-shaded stand-in for the sprite art.
func (r *Renderer) DrawSprite(s platformer.Sprite, pos core.Vec2, mirrored bool) {
	w, h := s.Kind.Size()
	box := core.RectAround(pos, w, h)

	switch s.Kind {
	case platformer.SpriteHeroIdle, platformer.SpriteHeroRun, platformer.SpriteHeroJump:
		r.drawHero(s, box, !mirrored)
	case platformer.SpriteEnemy:
		r.rect(box, rgba(core.ColorRed))
		r.drawEye(box, !mirrored)
	case platformer.SpriteFlyingEnemy:
		r.drawFlyer(s, box, mirrored)
	case platformer.SpriteCoin:
		r.drawCoin(s, box)
	case platformer.SpritePlatform:
		r.rect(box, rgba(core.ColorBrown))
		r.rect(core.NewRect(box.X, box.Y, box.W, 6), rgba(core.ColorGreen))
	case platformer.SpritePlatformMoving:
		r.rect(box, rgba(core.ColorGray))
		r.rect(core.NewRect(box.X, box.Y, box.W, 6), rgba(core.ColorCyan))
	case platformer.SpritePlatformFinal:
		r.rect(box, rgba(core.ColorOrange))
		r.rect(core.NewRect(box.X, box.Y, box.W, 6), rgba(core.ColorBrightYellow))
	case platformer.SpriteMountains:
		r.drawMountains(box)
	case platformer.SpriteGround:
		r.rect(box, rgba(core.ColorBrown))
		r.rect(core.NewRect(box.X, box.Y, box.W, 12), rgba(core.ColorGreen))
	}
}

func (r *Renderer) drawHero(s platformer.Sprite, box core.Rect, facingRight bool) {
	r.rect(box, rgba(core.ColorBrightGreen))
	r.drawEye(box, facingRight)

	// Legs alternate while running and tuck in while jumping
	legW := box.W / 3
	switch s.Kind {
	case platformer.SpriteHeroRun:
		offset := 4.0
		if s.Frame%2 == 1 {
			offset = -4
		}
		r.rect(core.NewRect(box.X+offset, box.Bottom()-8, legW, 8), rgba(core.ColorGreen))
		r.rect(core.NewRect(box.Right()-legW-offset, box.Bottom()-8, legW, 8), rgba(core.ColorGreen))
	case platformer.SpriteHeroJump:
		r.rect(core.NewRect(box.X+legW, box.Bottom()-8, legW, 8), rgba(core.ColorGreen))
	default:
		r.rect(core.NewRect(box.X, box.Bottom()-8, legW, 8), rgba(core.ColorGreen))
		r.rect(core.NewRect(box.Right()-legW, box.Bottom()-8, legW, 8), rgba(core.ColorGreen))
	}
}

func (r *Renderer) drawEye(box core.Rect, facingRight bool) {
	x := box.X + box.W*0.3
	if facingRight {
		x = box.X + box.W*0.7
	}
	eye := core.V(x, box.Y+box.H*0.3)
	r.circle(eye, 5, rgba(core.ColorBrightWhite))
	r.circle(eye, 2, rgba(core.ColorBlack))
}

func (r *Renderer) drawFlyer(s platformer.Sprite, box core.Rect, headingRight bool) {
	body := box.Center()
	r.circle(body, box.H/2, rgba(core.ColorMagenta))

	// Wings flap through three heights
	wingY := box.Y + float64(s.Frame)*box.H/4
	r.rect(core.NewRect(box.X, wingY, box.W*0.3, 6), rgba(core.ColorBrightMagenta))
	r.rect(core.NewRect(box.Right()-box.W*0.3, wingY, box.W*0.3, 6), rgba(core.ColorBrightMagenta))
	r.drawEye(core.RectAround(body, box.H, box.H), headingRight)
}

// coinWidth returns the visible width fraction of each spin frame.
func coinWidth(frame int) float64 {
	switch frame {
	case 1:
		return 0.6
	case 2:
		return 0.25
	default:
		return 1
	}
}

func (r *Renderer) drawCoin(s platformer.Sprite, box core.Rect) {
	w := box.W * coinWidth(s.Frame)
	c := box.Center()
	r.rect(core.RectAround(c, w, box.H*0.8), rgba(core.ColorOrange))
	r.rect(core.RectAround(c, w*0.7, box.H*0.6), rgba(core.ColorBrightYellow))
}

// drawMountains stacks narrowing slabs into three peaks.
func (r *Renderer) drawMountains(box core.Rect) {
	const (
		peaks  = 3
		layers = 8
	)
	peakW := box.W / peaks
	slabH := box.H / layers
	for p := 0; p < peaks; p++ {
		cx := box.X + peakW*(float64(p)+0.5)
		for l := 0; l < layers; l++ {
			w := peakW * float64(l+1) / layers
			y := box.Y + float64(l)*slabH
			r.rect(core.NewRect(cx-w/2, y, w, slabH+1), rgba(core.ColorGray))
		}
	}
}

func (r *Renderer) DrawText(s string, pos core.Vec2, anchor core.TextAnchor, size float64, c core.Color) {
	face := &text.GoTextFace{Source: r.font, Size: size * 0.6}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(rgba(c))
	if anchor == core.AnchorCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(r.dst, s, face, op)
}

var _ platformer.Renderer = (*Renderer)(nil)

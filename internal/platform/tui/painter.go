package tui

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// Painter implements platformer.Renderer on a character Screen, scaling the
// logical playfield down to the screen's cells.
type Painter struct {
	screen *core.Screen
}

// NewPainter creates a painter drawing into screen.
func NewPainter(screen *core.Screen) *Painter {
	return &Painter{screen: screen}
}

// scale returns cells per logical pixel on each axis.
func (p *Painter) scale() (sx, sy float64) {
	return float64(p.screen.Width()) / platformer.Width, float64(p.screen.Height()) / platformer.Height
}

// ToCell converts a logical position to the cell containing it.
func (p *Painter) ToCell(pos core.Vec2) (x, y int) {
	sx, sy := p.scale()
	return int(math.Floor(pos.X * sx)), int(math.Floor(pos.Y * sy))
}

// ToLogical converts a cell to the logical position of its centre.
func (p *Painter) ToLogical(x, y int) core.Vec2 {
	sx, sy := p.scale()
	return core.V((float64(x)+0.5)/sx, (float64(y)+0.5)/sy)
}

// cellSpan returns the cells covered by r, at least one on each axis.
func (p *Painter) cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	sx, sy := p.scale()
	x0 = int(math.Floor(r.Left() * sx))
	y0 = int(math.Floor(r.Top() * sy))
	x1 = int(math.Ceil(r.Right() * sx))
	y1 = int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func isSky(c core.Color) bool {
	return c == core.ColorSkyLight || c == core.ColorSky || c == core.ColorSkyDeep
}

// fillRune picks the glyph used to paint solid areas of a colour.
func fillRune(c core.Color) rune {
	switch {
	case isSky(c):
		return ' '
	case c == core.ColorBrightWhite:
		return '░'
	default:
		return '█'
	}
}

func (p *Painter) Clear(core.Color) {
	p.screen.Clear()
}

func (p *Painter) FillRect(r core.Rect, c core.Color) {
	x0, y0, x1, y1 := p.cellSpan(r)
	p.screen.FillArea(x0, y0, x1-x0, y1-y0, fillRune(c), c)
}

func (p *Painter) FillCircle(center core.Vec2, radius float64, c core.Color) {
	x0, y0, x1, y1 := p.cellSpan(core.RectAround(center, 2*radius, 2*radius))
	ch := fillRune(c)
	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pt := p.ToLogical(x, y)
			if math.Hypot(pt.X-center.X, pt.Y-center.Y) <= radius {
				p.screen.SetCell(x, y, ch, c)
				painted = true
			}
		}
	}
	// Circles smaller than a cell still show up
	if !painted {
		cx, cy := p.ToCell(center)
		p.screen.SetCell(cx, cy, ch, c)
	}
}

// glyph is how a sprite frame looks in the terminal.
type glyph struct {
	fill  rune
	color core.Color
}

var (
	heroRun      = []rune{'/', '|', '\\', '|'}
	enemyFrames  = []rune{'x', 'X', 'x'}
	flyingFrames = []rune{'v', 'w', 'v'}
	coinFrames   = []rune{'o', 'O', '0'}
)

func frameRune(frames []rune, i int) rune {
	if i < 0 || i >= len(frames) {
		return frames[0]
	}
	return frames[i]
}

func spriteGlyph(s platformer.Sprite) glyph {
	switch s.Kind {
	case platformer.SpriteHeroIdle:
		return glyph{'@', core.ColorBrightGreen}
	case platformer.SpriteHeroRun:
		return glyph{frameRune(heroRun, s.Frame), core.ColorBrightGreen}
	case platformer.SpriteHeroJump:
		return glyph{'^', core.ColorBrightGreen}
	case platformer.SpriteEnemy:
		return glyph{frameRune(enemyFrames, s.Frame), core.ColorBrightRed}
	case platformer.SpriteFlyingEnemy:
		return glyph{frameRune(flyingFrames, s.Frame), core.ColorBrightMagenta}
	case platformer.SpriteCoin:
		return glyph{frameRune(coinFrames, s.Frame), core.ColorBrightYellow}
	case platformer.SpritePlatform:
		return glyph{'=', core.ColorWhite}
	case platformer.SpritePlatformMoving:
		return glyph{'~', core.ColorCyan}
	case platformer.SpritePlatformFinal:
		return glyph{'#', core.ColorBrightYellow}
	case platformer.SpriteGround:
		return glyph{'▓', core.ColorBrown}
	default:
		return glyph{'?', core.ColorDefault}
	}
}

// DrawSprite fills the sprite's footprint with its glyph. Characters and
// enemies get a facing marker on the side they look towards.
func (p *Painter) DrawSprite(s platformer.Sprite, pos core.Vec2, mirrored bool) {
	w, h := s.Kind.Size()
	x0, y0, x1, y1 := p.cellSpan(core.RectAround(pos, w, h))

	if s.Kind == platformer.SpriteMountains {
		p.drawMountains(x0, y0, x1, y1)
		return
	}

	g := spriteGlyph(s)
	p.screen.FillArea(x0, y0, x1-x0, y1-y0, g.fill, g.color)

	switch s.Kind {
	case platformer.SpriteHeroIdle, platformer.SpriteHeroRun, platformer.SpriteHeroJump, platformer.SpriteEnemy:
		p.drawFacing(x0, x1, y0, !mirrored, g.color)
	case platformer.SpriteFlyingEnemy:
		// Flying art faces left, so mirrored means heading right
		p.drawFacing(x0, x1, y0, mirrored, g.color)
	}
}

func (p *Painter) drawFacing(x0, x1, y int, right bool, c core.Color) {
	if x1-x0 < 2 {
		return
	}
	if right {
		p.screen.SetCell(x1-1, y, '>', c)
	} else {
		p.screen.SetCell(x0, y, '<', c)
	}
}

// drawMountains draws a jagged ridge over the span, shaded below.
func (p *Painter) drawMountains(x0, y0, x1, y1 int) {
	height := y1 - y0
	if height <= 0 {
		return
	}
	const peakWidth = 12
	for x := x0; x < x1; x++ {
		// Triangle wave between the top and the middle of the span
		phase := float64((x-x0)%peakWidth) / peakWidth
		peak := 1 - 2*math.Abs(phase-0.5)
		ridge := y0 + int(math.Round(float64(height)/2*(1-peak)))
		p.screen.SetCell(x, ridge, '^', core.ColorGray)
		for y := ridge + 1; y < y1; y++ {
			p.screen.SetCell(x, y, '░', core.ColorGray)
		}
	}
}

func (p *Painter) DrawText(text string, pos core.Vec2, anchor core.TextAnchor, _ float64, c core.Color) {
	x, y := p.ToCell(pos)
	if anchor == core.AnchorCenter {
		p.screen.DrawTextCentered(x, y, text, c)
		return
	}
	p.screen.DrawText(x, y, text, c)
}

var _ platformer.Renderer = (*Painter)(nil)

package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	titleSize  = 60
	buttonSize = 30
	hudSize    = 30
	bannerSize = 60
	noteSize   = 40
)

// Draw renders the current frame.
func (s *Session) Draw(r Renderer) {
	r.Clear(core.ColorBlack)
	s.background.Draw(r)

	switch s.state {
	case StateMenu:
		s.drawMenu(r)
	case StatePlaying:
		s.drawWorld(r)
		s.drawHUD(r)
	case StateGameOver:
		s.drawResult(r, "Game Over!", core.ColorBrightRed)
	case StateWin:
		s.drawResult(r, "You Win!", core.ColorBrightYellow)
	}
}

func (s *Session) drawMenu(r Renderer) {
	r.DrawText("Kodland", core.V(Width/2, Height/4), core.AnchorCenter, titleSize, core.ColorBrightWhite)
	for _, b := range Buttons {
		r.FillRect(b.Rect(), core.ColorBlue)
		r.DrawText(b.Label(s.musicOn, s.soundEffectsOn), b.Center(), core.AnchorCenter, buttonSize, core.ColorBrightWhite)
	}
}

func (s *Session) drawWorld(r Renderer) {
	for _, p := range s.platforms {
		r.DrawSprite(p.Sprite(), p.Pos, false)
	}
	for _, c := range s.coins {
		r.DrawSprite(c.Sprite(), c.Pos, false)
	}
	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		sp, mirrored := e.Sprite()
		r.DrawSprite(sp, e.Pos, mirrored)
	}
	for _, f := range s.flyingEnemies {
		if !f.Active {
			continue
		}
		sp, mirrored := f.Sprite()
		r.DrawSprite(sp, f.Pos, mirrored)
	}
	sp, mirrored := s.player.Sprite()
	r.DrawSprite(sp, s.player.Pos, mirrored)
}

func (s *Session) drawHUD(r Renderer) {
	r.DrawText(fmt.Sprintf("Health: %d", s.player.Health), core.V(10, 10), core.AnchorTopLeft, hudSize, core.ColorBrightWhite)
	r.DrawText(fmt.Sprintf("Score: %d", s.player.Score), core.V(10, 40), core.AnchorTopLeft, hudSize, core.ColorBrightWhite)
}

func (s *Session) drawResult(r Renderer, banner string, c core.Color) {
	r.DrawText(banner, core.V(Width/2, Height/2), core.AnchorCenter, bannerSize, c)
	r.DrawText(fmt.Sprintf("Final Score: %d", s.player.Score), core.V(Width/2, Height/2+50), core.AnchorCenter, noteSize, core.ColorBrightWhite)
	r.DrawText("Click to return to menu", core.V(Width/2, Height/2+100), core.AnchorCenter, noteSize, core.ColorBrightWhite)
}

package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the gravity-driven controllable hero.
type Player struct {
	Body
	VelocityY   float64
	Jumping     bool
	OnGround    bool
	FacingRight bool
	Health      int
	Score       int

	anim    animation
	running bool // horizontal input held during the last update
	phys    config.PhysicsConfig
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.Config) *Player {
	return &Player{
		Body:        newBody(SpriteHeroIdle, core.V(cfg.Player.StartX, cfg.Player.StartY)),
		FacingRight: true,
		Health:      cfg.Player.StartHealth,
		anim:        animation{frames: heroFrames, delay: cfg.Animation.PlayerDelay},
		phys:        cfg.Physics,
	}
}

// floorY returns the absolute fallback ground line.
func (p *Player) floorY() float64 {
	return Height - p.phys.FloorOffset
}

// Update integrates gravity, lands the player on platforms or the floor and
// advances the animation. Long frames are split into sub-steps so a fast
// fall cannot skip over a platform.
func (p *Player) Update(dt float64, platforms []*Platform, in core.InputFrame) {
	// Facing follows input even when the player can't move
	if in.Has(core.ActionLeft) {
		p.FacingRight = false
	} else if in.Has(core.ActionRight) {
		p.FacingRight = true
	}

	p.OnGround = false

	steps := p.substeps(dt)
	h := dt / float64(steps)
	for range steps {
		p.fall(h, platforms)
	}

	// Floor clamp
	if p.Bottom() > p.floorY() {
		p.land(p.floorY())
		p.Pos.X = core.ClampF(p.Pos.X, p.phys.WallMargin, Width-p.phys.WallMargin)
	}

	p.running = in.Horizontal()
	p.anim.update(dt)
}

// substeps returns how many pieces dt needs so that no single vertical move
// exceeds half the player's height.
func (p *Player) substeps(dt float64) int {
	limit := p.H / 2
	if dt <= 0 || limit <= 0 {
		return 1
	}
	travel := math.Abs(p.VelocityY)*dt + p.phys.Gravity*dt*dt
	return max(1, int(math.Ceil(travel/limit)))
}

// fall applies gravity for h seconds and lands on the first platform the
// player drops onto.
func (p *Player) fall(h float64, platforms []*Platform) {
	prevBottom := p.Bottom()

	p.VelocityY += p.phys.Gravity * h
	p.Pos.Y += p.VelocityY * h

	// Land only when falling onto a platform whose top was at or below our
	// feet before this move
	for _, pl := range platforms {
		if !p.Overlaps(pl.Body) {
			continue
		}
		if p.VelocityY > 0 && prevBottom <= pl.Top() {
			p.land(pl.Top())
		}
	}
}

// land puts the player's feet on y and ends any jump.
func (p *Player) land(y float64) {
	p.SetBottom(y)
	p.VelocityY = 0
	p.Jumping = false
	p.OnGround = true
}

// ApplyInput maps held keys to horizontal motion and starts a jump when
// grounded. It reports whether a jump started.
func (p *Player) ApplyInput(dt float64, in core.InputFrame) bool {
	if in.Has(core.ActionLeft) {
		p.Pos.X -= p.phys.RunSpeed * dt
		p.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		p.Pos.X += p.phys.RunSpeed * dt
		p.FacingRight = true
	}

	if in.Has(core.ActionJump) && p.OnGround && !p.Jumping {
		p.VelocityY = p.phys.JumpStrength
		p.Jumping = true
		return true
	}
	return false
}

// Hurt removes one health point, never going below zero, and reports
// whether the player is out of health.
func (p *Player) Hurt() bool {
	if p.Health > 0 {
		p.Health--
	}
	return p.Health <= 0
}

// Bounce launches the player upward after a stomp.
func (p *Player) Bounce() {
	p.VelocityY = p.phys.StompBounce
}

// Sprite selects the animation frame: jumping, then running, then idle.
// The art faces right, so the frame is mirrored when facing left.
func (p *Player) Sprite() (Sprite, bool) {
	mirrored := !p.FacingRight
	switch {
	case p.Jumping:
		return Sprite{Kind: SpriteHeroJump}, mirrored
	case p.running:
		return Sprite{Kind: SpriteHeroRun, Frame: p.anim.Frame}, mirrored
	default:
		return Sprite{Kind: SpriteHeroIdle, Frame: p.anim.Frame}, mirrored
	}
}

package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Platform is a rectangle the player can land on. Moving platforms oscillate
// horizontally around their start position.
type Platform struct {
	Body
	Moving    bool
	MoveRange float64
	StartX    float64
	Direction float64 // +1 right, -1 left
	Speed     float64
	Final     bool // standing on it wins the game
}

// NewPlatform creates a static platform centred on pos.
func NewPlatform(pos core.Vec2) *Platform {
	return &Platform{
		Body:      newBody(SpritePlatform, pos),
		StartX:    pos.X,
		Direction: 1,
	}
}

// NewMovingPlatform creates a platform oscillating ±moveRange around pos.X.
func NewMovingPlatform(pos core.Vec2, moveRange, speed float64) *Platform {
	p := NewPlatform(pos)
	p.Moving = true
	p.MoveRange = moveRange
	p.Speed = speed
	return p
}

// NewFinalPlatform creates the goal platform.
func NewFinalPlatform(pos core.Vec2) *Platform {
	p := NewPlatform(pos)
	p.Final = true
	return p
}

// Update advances an oscillating platform. Reaching either end of the range
// pins the platform to the boundary and reverses it.
func (p *Platform) Update(dt float64) {
	if !p.Moving {
		return
	}

	p.Pos.X += p.Direction * p.Speed * dt

	switch offset := p.Pos.X - p.StartX; {
	case offset > p.MoveRange:
		p.Pos.X = p.StartX + p.MoveRange
		p.Direction = -1
	case offset < -p.MoveRange:
		p.Pos.X = p.StartX - p.MoveRange
		p.Direction = 1
	}
}

// Sprite returns the frame to draw for this platform.
func (p *Platform) Sprite() Sprite {
	switch {
	case p.Final:
		return Sprite{Kind: SpritePlatformFinal}
	case p.Moving:
		return Sprite{Kind: SpritePlatformMoving}
	default:
		return Sprite{Kind: SpritePlatform}
	}
}

package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Hazard is an enemy the player can either stomp or be hurt by.
type Hazard interface {
	Box() core.Rect
	IsActive() bool
	// Defeat permanently deactivates the hazard.
	Defeat()
}

// patrol moves an entity back and forth within Range of StartX.
type patrol struct {
	StartX    float64
	Range     float64
	Speed     float64
	Direction float64 // +1 right, -1 left
}

// step returns the next x position. A step that would leave the patrol range
// reverses the direction instead of moving.
func (p *patrol) step(x, dt float64) float64 {
	next := x + p.Direction*p.Speed*dt
	if math.Abs(next-p.StartX) > p.Range {
		p.Direction = -p.Direction
		return x
	}
	return next
}

// animation is a looping frame counter driven by elapsed time.
type animation struct {
	Frame  int
	frames int
	delay  float64
	timer  float64
}

func (a *animation) update(dt float64) {
	a.timer += dt
	if a.timer >= a.delay {
		a.timer = 0
		a.Frame = (a.Frame + 1) % a.frames
	}
}

// Enemy is a ground hazard patrolling along a fixed y-coordinate.
type Enemy struct {
	Body
	patrol
	anim   animation
	Active bool
}

// NewEnemy creates an active ground enemy centred on pos.
func NewEnemy(pos core.Vec2, direction, speed, patrolRange, animDelay float64) *Enemy {
	return &Enemy{
		Body: newBody(SpriteEnemy, pos),
		patrol: patrol{
			StartX:    pos.X,
			Range:     patrolRange,
			Speed:     speed,
			Direction: direction,
		},
		anim:   animation{frames: enemyFrames, delay: animDelay},
		Active: true,
	}
}

// Update patrols and animates the enemy. Platforms are accepted for
// interface symmetry with the player; ground enemies do not follow them.
func (e *Enemy) Update(dt float64, _ []*Platform) {
	if !e.Active {
		return
	}
	e.Pos.X = e.step(e.Pos.X, dt)
	e.anim.update(dt)
}

// Sprite returns the current frame and whether it is mirrored (facing left).
func (e *Enemy) Sprite() (Sprite, bool) {
	return Sprite{Kind: SpriteEnemy, Frame: e.anim.Frame}, e.Direction < 0
}

func (e *Enemy) Box() core.Rect { return e.Rect() }
func (e *Enemy) IsActive() bool { return e.Active }
func (e *Enemy) Defeat()        { e.Active = false }

// FlyingEnemy patrols horizontally like Enemy while bobbing on a sine wave.
type FlyingEnemy struct {
	Body
	patrol
	anim      animation
	Active    bool
	StartY    float64
	Amplitude float64
	Frequency float64 // rad/s

	elapsed float64
}

// NewFlyingEnemy creates an active flying enemy centred on pos, heading right.
func NewFlyingEnemy(pos core.Vec2, speed, patrolRange, amplitude, frequency, animDelay float64) *FlyingEnemy {
	return &FlyingEnemy{
		Body: newBody(SpriteFlyingEnemy, pos),
		patrol: patrol{
			StartX:    pos.X,
			Range:     patrolRange,
			Speed:     speed,
			Direction: 1,
		},
		anim:      animation{frames: flyingFrames, delay: animDelay},
		Active:    true,
		StartY:    pos.Y,
		Amplitude: amplitude,
		Frequency: frequency,
	}
}

// Update patrols, bobs and animates the enemy.
func (f *FlyingEnemy) Update(dt float64) {
	if !f.Active {
		return
	}
	f.Pos.X = f.step(f.Pos.X, dt)

	f.elapsed += dt
	f.Pos.Y = f.StartY + math.Sin(f.elapsed*f.Frequency)*f.Amplitude

	f.anim.update(dt)
}

// Sprite returns the current frame. The art faces left, so the frame is
// mirrored while the enemy heads right.
func (f *FlyingEnemy) Sprite() (Sprite, bool) {
	return Sprite{Kind: SpriteFlyingEnemy, Frame: f.anim.Frame}, f.Direction > 0
}

func (f *FlyingEnemy) Box() core.Rect { return f.Rect() }
func (f *FlyingEnemy) IsActive() bool { return f.Active }
func (f *FlyingEnemy) Defeat()        { f.Active = false }

var (
	_ Hazard = (*Enemy)(nil)
	_ Hazard = (*FlyingEnemy)(nil)
)

package platformer

// SpriteKind identifies a family of animation frames.
type SpriteKind int

const (
	SpriteHeroIdle SpriteKind = iota
	SpriteHeroRun
	SpriteHeroJump
	SpriteEnemy
	SpriteFlyingEnemy
	SpriteCoin
	SpritePlatform
	SpritePlatformMoving
	SpritePlatformFinal
	SpriteMountains
	SpriteGround
)

// Sprite is a single drawable frame.
type Sprite struct {
	Kind  SpriteKind
	Frame int
}

// Frame counts per kind.
const (
	heroFrames   = 4
	enemyFrames  = 3
	flyingFrames = 3
	coinFrames   = 3
)

// Size returns the footprint of a sprite kind in pixels.
// Collision boxes are the footprint centred on the entity position.
func (k SpriteKind) Size() (w, h float64) {
	switch k {
	case SpriteHeroIdle, SpriteHeroRun, SpriteHeroJump:
		return 40, 56
	case SpriteEnemy:
		return 48, 48
	case SpriteFlyingEnemy:
		return 56, 40
	case SpriteCoin:
		return 32, 32
	case SpritePlatform, SpritePlatformMoving, SpritePlatformFinal:
		return 140, 24
	case SpriteMountains:
		return Width, 200
	case SpriteGround:
		return Width, 100
	default:
		return 1, 1
	}
}

// String returns the asset-style name of the sprite kind.
func (k SpriteKind) String() string {
	switch k {
	case SpriteHeroIdle:
		return "hero_idle"
	case SpriteHeroRun:
		return "hero_run"
	case SpriteHeroJump:
		return "hero_jump"
	case SpriteEnemy:
		return "enemy_idle"
	case SpriteFlyingEnemy:
		return "flying_enemy"
	case SpriteCoin:
		return "coin"
	case SpritePlatform:
		return "platform"
	case SpritePlatformMoving:
		return "platform_moving"
	case SpritePlatformFinal:
		return "platform_win"
	case SpriteMountains:
		return "bg_mountains"
	case SpriteGround:
		return "bg_ground"
	default:
		return "unknown"
	}
}

// Package platformer implements the platformer simulation: entities, collision
// resolution and the menu/playing/game-over/win state machine. Rendering and
// audio are reached through the Renderer and Audio interfaces.
package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Playfield size in logical pixels.
const (
	Width  = core.LogicalWidth
	Height = core.LogicalHeight
)

// platformSpot places one platform of the fixed level.
type platformSpot struct {
	Pos       core.Vec2
	MoveRange float64 // 0 = static
	Final     bool
}

// The level is a climb from the floor (bottom at Height-100) to the final
// platform. Consecutive tops are at most ~87px apart so every step is within
// a single jump.
var levelPlatforms = []platformSpot{
	{Pos: core.V(400, Height-168)},
	{Pos: core.V(200, Height-248), MoveRange: 100},
	{Pos: core.V(600, Height-248)},
	{Pos: core.V(400, Height-330), MoveRange: 150},
	{Pos: core.V(200, Height-413)},
	{Pos: core.V(200, Height-500), Final: true},
}

// One coin on the floor and one above each platform from the third up.
var levelCoins = []core.Vec2{
	core.V(300, Height-130),
	core.V(600, Height-290),
	core.V(400, Height-370),
	core.V(200, Height-450),
	core.V(200, Height-540),
}

// Ground enemies stand on the floor line.
var levelEnemies = []core.Vec2{
	core.V(400, Height-124),
	core.V(600, Height-124),
}

var levelFlyingEnemies = []core.Vec2{
	core.V(300, 200),
	core.V(500, 250),
}

func buildPlatforms(cfg config.Config) []*Platform {
	platforms := make([]*Platform, 0, len(levelPlatforms))
	for _, s := range levelPlatforms {
		switch {
		case s.Final:
			platforms = append(platforms, NewFinalPlatform(s.Pos))
		case s.MoveRange > 0:
			platforms = append(platforms, NewMovingPlatform(s.Pos, s.MoveRange, cfg.Platforms.Speed))
		default:
			platforms = append(platforms, NewPlatform(s.Pos))
		}
	}
	return platforms
}

func buildCoins(cfg config.Config) []*Coin {
	coins := make([]*Coin, 0, len(levelCoins))
	for _, pos := range levelCoins {
		coins = append(coins, NewCoin(pos, cfg.Animation.CoinDelay))
	}
	return coins
}

// buildEnemies spawns the ground enemies, each heading in a random direction.
func buildEnemies(cfg config.Config, rng *rand.Rand) []*Enemy {
	enemies := make([]*Enemy, 0, len(levelEnemies))
	for _, pos := range levelEnemies {
		direction := 1.0
		if rng.Intn(2) == 0 {
			direction = -1
		}
		enemies = append(enemies, NewEnemy(pos, direction,
			cfg.Enemies.GroundSpeed, cfg.Enemies.PatrolRange, cfg.Animation.EnemyDelay))
	}
	return enemies
}

func buildFlyingEnemies(cfg config.Config) []*FlyingEnemy {
	flying := make([]*FlyingEnemy, 0, len(levelFlyingEnemies))
	for _, pos := range levelFlyingEnemies {
		flying = append(flying, NewFlyingEnemy(pos,
			cfg.Enemies.FlyingSpeed, cfg.Enemies.PatrolRange,
			cfg.Enemies.FlyAmplitude, cfg.Enemies.FlyFrequency, cfg.Animation.EnemyDelay))
	}
	return flying
}

// Package config provides YAML-based tuning configuration for the platformer.
// The level layout is compiled in; only physics, speeds, timings and audio
// defaults can be tuned.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the simulation.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Platforms PlatformConfig  `yaml:"platforms"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PhysicsConfig defines player physics and collision tolerances.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // px/s², positive = down
	JumpStrength   float64 `yaml:"jump_strength"`   // initial vertical velocity of a jump (negative = up)
	RunSpeed       float64 `yaml:"run_speed"`       // horizontal px/s while left/right is held
	StompBounce    float64 `yaml:"stomp_bounce"`    // vertical velocity after stomping a hazard
	StompTolerance float64 `yaml:"stomp_tolerance"` // px below a hazard's top that still counts as a stomp
	WinTolerance   float64 `yaml:"win_tolerance"`   // px below the final platform's top that still counts as standing on it
	FloorOffset    float64 `yaml:"floor_offset"`    // floor line distance from the bottom of the playfield
	WallMargin     float64 `yaml:"wall_margin"`     // horizontal clamp margin applied on the floor
}

// PlayerConfig defines the player's starting state and scoring.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	StartHealth int     `yaml:"start_health"`
	CoinValue   int     `yaml:"coin_value"`
}

// EnemyConfig defines hazard patrol parameters.
type EnemyConfig struct {
	GroundSpeed  float64 `yaml:"ground_speed"`
	FlyingSpeed  float64 `yaml:"flying_speed"`
	PatrolRange  float64 `yaml:"patrol_range"`
	FlyAmplitude float64 `yaml:"fly_amplitude"`
	FlyFrequency float64 `yaml:"fly_frequency"` // rad/s
}

// PlatformConfig defines oscillating platform parameters.
type PlatformConfig struct {
	Speed float64 `yaml:"speed"`
}

// AnimationConfig defines per-frame delays in seconds.
type AnimationConfig struct {
	PlayerDelay float64 `yaml:"player_delay"`
	CoinDelay   float64 `yaml:"coin_delay"`
	EnemyDelay  float64 `yaml:"enemy_delay"`
}

// AudioConfig defines audio defaults applied to a fresh session.
type AudioConfig struct {
	MusicVolume  float64 `yaml:"music_volume"`
	Music        bool    `yaml:"music"`
	SoundEffects bool    `yaml:"sound_effects"`
}

// Validate reports every parameter that would break the simulation,
// joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpStrength >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_strength must be negative, got %v", c.Physics.JumpStrength))
	}
	if c.Player.StartHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.start_health must be positive, got %d", c.Player.StartHealth))
	}
	if c.Enemies.PatrolRange < 0 {
		errs = append(errs, fmt.Errorf("enemies.patrol_range must not be negative, got %v", c.Enemies.PatrolRange))
	}
	if c.Animation.PlayerDelay <= 0 || c.Animation.CoinDelay <= 0 || c.Animation.EnemyDelay <= 0 {
		errs = append(errs, errors.New("animation delays must be positive"))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume must be within [0, 1], got %v", c.Audio.MusicVolume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

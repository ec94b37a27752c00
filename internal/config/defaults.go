package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file fails to parse.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:        1300,
			JumpStrength:   -500,
			RunSpeed:       200,
			StompBounce:    -300,
			StompTolerance: 20,
			WinTolerance:   10,
			FloorOffset:    100,
			WallMargin:     50,
		},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      500, // HEIGHT - 100
			StartHealth: 3,
			CoinValue:   10,
		},
		Enemies: EnemyConfig{
			GroundSpeed:  150,
			FlyingSpeed:  100,
			PatrolRange:  200,
			FlyAmplitude: 50,
			FlyFrequency: 3,
		},
		Platforms: PlatformConfig{
			Speed: 100,
		},
		Animation: AnimationConfig{
			PlayerDelay: 0.2,
			CoinDelay:   0.1,
			EnemyDelay:  0.15,
		},
		Audio: AudioConfig{
			MusicVolume:  0.5,
			Music:        true,
			SoundEffects: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}

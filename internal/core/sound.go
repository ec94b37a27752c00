package core

// Sound identifies a one-shot sound effect.
type Sound string

const (
	SoundJump     Sound = "jump"
	SoundCoin     Sound = "coin"
	SoundHurt     Sound = "hurt"
	SoundGameOver Sound = "game_over"
	SoundVictory  Sound = "victory"
)

// Track identifies a looping music track.
type Track string

const TrackBackground Track = "background_music"

// Package audio plays synthesised music and sound effects through the
// system speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnavailable is returned by every playback call before Init succeeds
// or after Close.
var ErrUnavailable = errors.New("audio: speaker not initialised")

// Engine mixes one music track with any number of one-shot effects.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	volume      float64
	initialized bool
	logger      *log.Logger
}

// New creates an engine. Nothing plays until Init succeeds.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		mixer:  &beep.Mixer{},
		volume: 1,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	e.logger.Debug("speaker ready", "sample_rate", int(sampleRate))
	return nil
}

// Close silences everything and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	e.music = nil
	e.musicVolume = nil
	e.initialized = false
}

// PlayMusic replaces the current music with track.
func (e *Engine) PlayMusic(track core.Track) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playMusicLocked(track)
}

func (e *Engine) playMusicLocked(track core.Track) error {
	if !e.initialized {
		return ErrUnavailable
	}

	stream, ok := newTrack(sampleRate, track)
	if !ok {
		return fmt.Errorf("audio: unknown track %q", track)
	}

	vol := withVolume(stream, e.volume)
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Lock()
	e.stopLocked()
	e.mixer.Add(ctrl)
	speaker.Unlock()

	e.music = ctrl
	e.musicVolume = vol
	return nil
}

// PauseMusic holds the music at its current position.
func (e *Engine) PauseMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return
	}
	speaker.Lock()
	e.music.Paused = true
	speaker.Unlock()
}

// ResumeMusic continues paused music, or starts the background track when
// nothing has been played yet.
func (e *Engine) ResumeMusic() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return ErrUnavailable
	}
	if e.music == nil {
		return e.playMusicLocked(core.TrackBackground)
	}
	speaker.Lock()
	e.music.Paused = false
	speaker.Unlock()
	return nil
}

// StopMusic ends the music. A later PlayMusic starts it from the beginning.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return
	}
	speaker.Lock()
	e.stopLocked()
	speaker.Unlock()
}

// stopLocked detaches the current music. The mixer drops a Ctrl whose
// streamer is nil on its next pass. Caller holds both locks.
func (e *Engine) stopLocked() {
	if e.music == nil {
		return
	}
	e.music.Streamer = nil
	e.music = nil
	e.musicVolume = nil
}

// SetVolume sets the music volume, clamped to [0, 1].
func (e *Engine) SetVolume(v float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return ErrUnavailable
	}

	e.volume = clampVolume(v)
	if e.musicVolume != nil {
		speaker.Lock()
		setVolume(e.musicVolume, e.volume)
		speaker.Unlock()
	}
	return nil
}

// PlaySound starts a one-shot effect on top of whatever is playing.
func (e *Engine) PlaySound(id core.Sound) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return ErrUnavailable
	}

	s, ok := newSound(sampleRate, id)
	if !ok {
		return fmt.Errorf("audio: unknown sound %q", id)
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Volume returns the current music volume.
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

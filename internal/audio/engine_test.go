package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

var _ platformer.Audio = (*Engine)(nil)

func TestEngineUnavailableBeforeInit(t *testing.T) {
	e := New(nil)

	if err := e.PlayMusic(core.TrackBackground); !errors.Is(err, ErrUnavailable) {
		t.Errorf("PlayMusic: expected ErrUnavailable, got %v", err)
	}
	if err := e.ResumeMusic(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ResumeMusic: expected ErrUnavailable, got %v", err)
	}
	if err := e.SetVolume(0.5); !errors.Is(err, ErrUnavailable) {
		t.Errorf("SetVolume: expected ErrUnavailable, got %v", err)
	}
	if err := e.PlaySound(core.SoundCoin); !errors.Is(err, ErrUnavailable) {
		t.Errorf("PlaySound: expected ErrUnavailable, got %v", err)
	}

	// Fire-and-forget calls must be safe without a speaker
	e.PauseMusic()
	e.StopMusic()
	e.Close()
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetVolumeSilencesZero(t *testing.T) {
	vol := &effects.Volume{Base: 2}

	setVolume(vol, 0)
	if !vol.Silent {
		t.Error("zero volume should be silent")
	}

	setVolume(vol, 0.5)
	if vol.Silent || vol.Volume != -1 {
		t.Errorf("0.5 should be log2 -1, got %v silent=%v", vol.Volume, vol.Silent)
	}
}

// drain streams s until it ends or limit samples have been read.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || math.IsNaN(buf[i][0]) {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestSoundsAreFinite(t *testing.T) {
	sounds := []core.Sound{
		core.SoundJump,
		core.SoundCoin,
		core.SoundHurt,
		core.SoundGameOver,
		core.SoundVictory,
	}
	limit := sampleRate.N(5 * time.Second)

	for _, id := range sounds {
		t.Run(string(id), func(t *testing.T) {
			s, ok := newSound(sampleRate, id)
			if !ok {
				t.Fatal("sound not found")
			}
			n := drain(t, s, limit)
			if n == 0 {
				t.Error("sound produced no samples")
			}
			if n >= limit {
				t.Error("sound never ended")
			}
		})
	}
}

func TestUnknownSound(t *testing.T) {
	if _, ok := newSound(sampleRate, core.Sound("nope")); ok {
		t.Error("expected unknown sound to be rejected")
	}
	if _, ok := newTrack(sampleRate, core.Track("nope")); ok {
		t.Error("expected unknown track to be rejected")
	}
}

func TestBackgroundTrackLoops(t *testing.T) {
	s, ok := newTrack(sampleRate, core.TrackBackground)
	if !ok {
		t.Fatal("background track missing")
	}

	// Longer than one pass through the tune
	limit := sampleRate.N(10 * time.Second)
	if n := drain(t, s, limit); n < limit {
		t.Errorf("music stopped after %d samples", n)
	}
}

func TestSweepEnds(t *testing.T) {
	s := newSweep(sampleRate, 440, 880, 10*time.Millisecond, WaveSine)
	want := sampleRate.N(10 * time.Millisecond)

	if n := drain(t, s, want*10); n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}

	buf := make([][2]float64, 16)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained sweep returned n=%d ok=%v", n, ok)
	}
}

func TestShapeRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		for p := 0.0; p < 1; p += 0.01 {
			if v := shape(w, p); v < -1 || v > 1 {
				t.Errorf("wave %d phase %v: %v out of range", w, p, v)
			}
		}
	}
}

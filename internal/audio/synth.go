package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// sweep is a finite tone gliding from one frequency to another with a
// linear attack and an exponential decay.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	wave     Wave
	total    int
	attack   int
	pos      int
	phase    float64
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration, wave Wave) *sweep {
	return &sweep{
		rate:   rate,
		from:   from,
		to:     to,
		wave:   wave,
		total:  rate.N(d),
		attack: rate.N(5 * time.Millisecond),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		env := math.Exp(-4 * progress)
		if s.pos < s.attack {
			env *= float64(s.pos) / float64(s.attack)
		}

		v := env * shape(s.wave, s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// shape evaluates a wave at phase in [0, 1).
func shape(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// note is one step of the background melody; freq 0 is a rest.
type note struct {
	freq  float64
	beats float64
}

// backgroundTune is a short C major loop.
var backgroundTune = []note{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {659.25, 1},
	{587.33, 1}, {698.46, 1}, {880.00, 1}, {698.46, 1},
	{523.25, 1}, {659.25, 1}, {783.99, 2},
	{493.88, 1}, {587.33, 1}, {783.99, 2},
	{0, 1},
}

// melody loops a note sequence forever over a steady bass drone.
type melody struct {
	rate    beep.SampleRate
	notes   []note
	beatLen int
	index   int
	notePos int
	noteLen int
	phase   float64
	bass    beep.Streamer
	bassBuf [][2]float64
}

func newMelody(rate beep.SampleRate, notes []note, tempo time.Duration) *melody {
	bass, err := generators.SineTone(rate, 130.81)
	if err != nil {
		// Only fails for frequencies above the Nyquist limit
		bass = beep.Silence(-1)
	}
	m := &melody{
		rate:    rate,
		notes:   notes,
		beatLen: rate.N(tempo),
		bass:    bass,
	}
	m.noteLen = m.lengthOf(0)
	return m
}

func (m *melody) lengthOf(i int) int {
	return int(m.notes[i].beats * float64(m.beatLen))
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(m.bassBuf) < len(samples) {
		m.bassBuf = make([][2]float64, len(samples))
	}
	bass := m.bassBuf[:len(samples)]
	bn, _ := m.bass.Stream(bass)

	for i := range samples {
		nt := m.notes[m.index]

		v := 0.0
		if nt.freq > 0 {
			// Short fade at both ends of every note avoids clicks
			edge := math.Min(float64(m.notePos), float64(m.noteLen-m.notePos)) / float64(m.rate.N(10*time.Millisecond))
			env := math.Min(edge, 1)
			v = 0.3 * env * shape(WaveSquare, m.phase)
			m.phase += nt.freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		if i < bn {
			v += 0.25 * bass[i][0]
		}

		samples[i][0] = v
		samples[i][1] = v

		m.notePos++
		if m.notePos >= m.noteLen {
			m.index = (m.index + 1) % len(m.notes)
			m.notePos = 0
			m.noteLen = m.lengthOf(m.index)
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// withVolume scales a streamer by a linear factor in [0, 1].
func withVolume(s beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: s, Base: 2}
	setVolume(vol, v)
	return vol
}

// setVolume applies a linear factor to an existing volume effect.
// log2(0) is -Inf, so zero becomes silence.
func setVolume(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Volume = 0
		vol.Silent = true
		return
	}
	vol.Volume = math.Log2(v)
	vol.Silent = false
}

// newSound synthesises a one-shot effect. ok is false for unknown ids.
func newSound(rate beep.SampleRate, id core.Sound) (s beep.Streamer, ok bool) {
	switch id {
	case core.SoundJump:
		return withVolume(newSweep(rate, 300, 700, 150*time.Millisecond, WaveSquare), 0.25), true
	case core.SoundCoin:
		return withVolume(beep.Seq(
			newSweep(rate, 987.77, 987.77, 70*time.Millisecond, WaveSquare),
			newSweep(rate, 1318.51, 1318.51, 180*time.Millisecond, WaveSquare),
		), 0.2), true
	case core.SoundHurt:
		return withVolume(newSweep(rate, 220, 90, 200*time.Millisecond, WaveTriangle), 0.5), true
	case core.SoundGameOver:
		return withVolume(beep.Seq(
			newSweep(rate, 392, 392, 250*time.Millisecond, WaveTriangle),
			newSweep(rate, 330, 330, 250*time.Millisecond, WaveTriangle),
			newSweep(rate, 262, 196, 600*time.Millisecond, WaveTriangle),
		), 0.5), true
	case core.SoundVictory:
		return withVolume(beep.Seq(
			newSweep(rate, 523.25, 523.25, 120*time.Millisecond, WaveSquare),
			newSweep(rate, 659.25, 659.25, 120*time.Millisecond, WaveSquare),
			newSweep(rate, 783.99, 783.99, 120*time.Millisecond, WaveSquare),
			newSweep(rate, 1046.5, 1046.5, 500*time.Millisecond, WaveSquare),
		), 0.25), true
	default:
		return nil, false
	}
}

// newTrack builds the endless stream for a music track.
func newTrack(rate beep.SampleRate, track core.Track) (beep.Streamer, bool) {
	switch track {
	case core.TrackBackground:
		return newMelody(rate, backgroundTune, 200*time.Millisecond), true
	default:
		return nil, false
	}
}

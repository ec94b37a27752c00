package platformer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Session owns every entity of one game and drives the state machine.
// It is not safe for concurrent use; a frontend owns exactly one.
type Session struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	audio   Audio
	logger  *log.Logger
	rng     *rand.Rand

	state         State
	player        *Player
	platforms     []*Platform
	coins         []*Coin
	enemies       []*Enemy
	flyingEnemies []*FlyingEnemy
	background    *Background

	// Settings that survive Reset(true).
	musicOn        bool
	soundEffectsOn bool

	quit bool
}

// NewSession builds a fresh session in the menu and starts the background
// music if enabled. A nil audio plays nothing; a nil logger discards.
func NewSession(cfg config.Config, runtime core.RuntimeConfig, audio Audio, logger *log.Logger) *Session {
	if audio == nil {
		audio = SilentAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		audio:   audio,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Reset(false)
	s.startMusic()
	return s
}

// Reset rebuilds every entity from the level data and returns to the menu.
// With preserveSettings the music and sound effect toggles keep their current
// values, otherwise they are taken from the configuration.
func (s *Session) Reset(preserveSettings bool) {
	if !preserveSettings {
		s.musicOn = s.cfg.Audio.Music
		s.soundEffectsOn = s.cfg.Audio.SoundEffects
	}

	s.state = StateMenu
	s.quit = false
	s.player = NewPlayer(s.cfg)
	s.platforms = buildPlatforms(s.cfg)
	s.coins = buildCoins(s.cfg)
	s.enemies = buildEnemies(s.cfg, s.rng)
	s.flyingEnemies = buildFlyingEnemies(s.cfg)
	s.background = NewBackground(s.rng)
}

// ReturnToMenu resets the session, keeping the audio toggles, and restarts
// the music.
func (s *Session) ReturnToMenu() {
	s.logger.Debug("returning to menu", "from", s.state, "score", s.player.Score)
	s.Reset(true)
	s.startMusic()
}

// Start moves from the menu into play.
func (s *Session) Start() {
	if s.state != StateMenu {
		return
	}
	s.setState(StatePlaying)
	s.startMusic()
}

// ToggleMusic flips background music. A failure to resume leaves it off.
func (s *Session) ToggleMusic() {
	s.musicOn = !s.musicOn
	if !s.musicOn {
		s.audio.PauseMusic()
		return
	}
	if err := s.audio.ResumeMusic(); err != nil {
		s.disableMusic(err)
		return
	}
	if err := s.audio.SetVolume(s.cfg.Audio.MusicVolume); err != nil {
		s.disableMusic(err)
	}
}

// ToggleSoundEffects flips sound effects on or off.
func (s *Session) ToggleSoundEffects() {
	s.soundEffectsOn = !s.soundEffectsOn
}

// OnClick handles a pointer press at pos in logical pixels.
func (s *Session) OnClick(pos core.Vec2) {
	switch s.state {
	case StateMenu:
		b, ok := ButtonAt(pos)
		if !ok {
			return
		}
		switch b {
		case ButtonStart:
			s.Start()
		case ButtonMusic:
			s.ToggleMusic()
		case ButtonSoundEffects:
			s.ToggleSoundEffects()
		case ButtonQuit:
			s.quit = true
		}
	case StateGameOver, StateWin:
		s.ReturnToMenu()
	}
}

// Tick runs one frame: keyboard menu shortcuts, the simulation step and then
// the player's input.
func (s *Session) Tick(dt float64, in core.InputFrame) {
	s.handleMenuInput(in)
	s.Update(dt, in)
	s.ApplyInput(dt, in)
}

// handleMenuInput maps keyboard actions onto the menu and result screens.
func (s *Session) handleMenuInput(in core.InputFrame) {
	switch s.state {
	case StateMenu:
		switch {
		case in.Has(core.ActionConfirm):
			s.Start()
		case in.Has(core.ActionToggleMusic):
			s.ToggleMusic()
		case in.Has(core.ActionToggleEffects):
			s.ToggleSoundEffects()
		}
	case StateGameOver, StateWin:
		if in.Has(core.ActionConfirm) {
			s.ReturnToMenu()
		}
	}
}

// Update advances the simulation by dt seconds. Outside of play only the
// background moves.
func (s *Session) Update(dt float64, in core.InputFrame) {
	s.background.Update(dt)

	if s.state != StatePlaying {
		return
	}

	s.player.Update(dt, s.platforms, in)
	for _, p := range s.platforms {
		p.Update(dt)
	}
	for _, c := range s.coins {
		c.Update(dt)
	}
	for _, f := range s.flyingEnemies {
		f.Update(dt)
	}
	for _, e := range s.enemies {
		e.Update(dt, s.platforms)
	}

	s.collectCoins()
	for _, f := range s.flyingEnemies {
		s.resolveHazard(f)
	}
	for _, e := range s.enemies {
		s.resolveHazard(e)
	}
	s.checkWin()
}

// ApplyInput moves the player from held keys and starts jumps. It does
// nothing outside of play.
func (s *Session) ApplyInput(dt float64, in core.InputFrame) {
	if s.state != StatePlaying {
		return
	}
	if s.player.ApplyInput(dt, in) {
		s.playSound(core.SoundJump)
	}
}

func (s *Session) collectCoins() {
	remaining := s.coins[:0]
	for _, c := range s.coins {
		if s.player.Overlaps(c.Body) {
			s.player.Score += s.cfg.Player.CoinValue
			s.playSound(core.SoundCoin)
			continue
		}
		remaining = append(remaining, c)
	}
	// Drop references to collected coins past the new length
	for i := len(remaining); i < len(s.coins); i++ {
		s.coins[i] = nil
	}
	s.coins = remaining
}

// resolveHazard either stomps h or hurts the player.
func (s *Session) resolveHazard(h Hazard) {
	if !h.IsActive() || !core.Overlaps(s.player.Rect(), h.Box()) {
		return
	}

	if s.player.VelocityY > 0 && s.player.Bottom() < h.Box().Top()+s.cfg.Physics.StompTolerance {
		h.Defeat()
		s.player.Bounce()
		s.playSound(core.SoundHurt)
		return
	}

	dead := s.player.Hurt()
	s.playSound(core.SoundHurt)
	if dead && s.state == StatePlaying {
		s.setState(StateGameOver)
		s.audio.StopMusic()
		s.playSound(core.SoundGameOver)
	}
}

func (s *Session) checkWin() {
	if s.state != StatePlaying {
		return
	}
	for _, p := range s.platforms {
		if !p.Final || !s.player.Overlaps(p.Body) {
			continue
		}
		if s.player.Bottom() <= p.Top()+s.cfg.Physics.WinTolerance {
			s.setState(StateWin)
			s.audio.StopMusic()
			s.playSound(core.SoundVictory)
			return
		}
	}
}

func (s *Session) setState(next State) {
	s.logger.Debug("state change", "from", s.state, "to", next,
		"score", s.player.Score, "health", s.player.Health)
	s.state = next
}

// startMusic plays the background track when music is on.
func (s *Session) startMusic() {
	if !s.musicOn {
		return
	}
	if err := s.audio.PlayMusic(core.TrackBackground); err != nil {
		s.disableMusic(err)
		return
	}
	if err := s.audio.SetVolume(s.cfg.Audio.MusicVolume); err != nil {
		s.disableMusic(err)
	}
}

func (s *Session) disableMusic(err error) {
	s.logger.Warn("music unavailable, turning it off", "error", err)
	s.musicOn = false
}

func (s *Session) playSound(id core.Sound) {
	if !s.soundEffectsOn {
		return
	}
	if err := s.audio.PlaySound(id); err != nil {
		s.logger.Warn("sound effect failed", "sound", id, "error", err)
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Player returns the player entity.
func (s *Session) Player() *Player { return s.player }

// Platforms returns the level platforms.
func (s *Session) Platforms() []*Platform { return s.platforms }

// Coins returns the coins not yet collected.
func (s *Session) Coins() []*Coin { return s.coins }

// Enemies returns the ground enemies, including defeated ones.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// FlyingEnemies returns the flying enemies, including defeated ones.
func (s *Session) FlyingEnemies() []*FlyingEnemy { return s.flyingEnemies }

func (s *Session) Background() *Background { return s.background }

func (s *Session) MusicOn() bool        { return s.musicOn }
func (s *Session) SoundEffectsOn() bool { return s.soundEffectsOn }

// QuitRequested reports whether the Quit button was pressed.
func (s *Session) QuitRequested() bool { return s.quit }

// Runtime returns the runtime configuration the session was built with.
func (s *Session) Runtime() core.RuntimeConfig { return s.runtime }

// TickRate returns the frame rate the driver should aim for.
func (s *Session) TickRate() int {
	if s.runtime.TickRate <= 0 {
		return core.DefaultConfig().TickRate
	}
	return s.runtime.TickRate
}

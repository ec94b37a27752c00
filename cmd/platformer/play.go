package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"

	// Frontends register themselves
	_ "github.com/vovakirdan/tui-platformer/internal/platform/gui"
	_ "github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagFrontend string
	flagMute     bool
	flagNoSFX    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the chosen frontend.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  Enter / click    - Start, leave the result screen
  M / E            - Toggle music / sound effects in the menu
  Q, Ctrl+C, Esc   - Quit

Examples:
  platformer play
  platformer play --frontend window
  platformer play --mute --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "terminal", "Frontend to play in (see 'platformer frontends')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
	playCmd.Flags().BoolVar(&flagNoSFX, "no-sfx", false, "Start with sound effects off")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'platformer frontends' to see the list", flagFrontend)
	}

	logger, closeLog, err := newLogger(flagFrontend == "terminal")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := openAudio(logger)
	defer out.Close()

	return playOnce(flagFrontend, cfg, runtimeConfig(), out, logger)
}

// loadConfig loads the tuning file and applies the audio flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagMute {
		cfg.Audio.Music = false
	}
	if flagNoSFX {
		cfg.Audio.SoundEffects = false
	}
	return cfg, nil
}

// runtimeConfig sizes the runtime config to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playOnce runs one fresh session in the given frontend until the player quits.
func playOnce(frontendID string, cfg config.Config, rt core.RuntimeConfig, out platformer.Audio, logger *log.Logger) error {
	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	session := platformer.NewSession(cfg, rt, out, logger)
	logger.Info("starting", "frontend", frontend.ID(), "seed", rt.Seed, "fps", rt.TickRate)

	if err := frontend.Run(session); err != nil {
		return fmt.Errorf("running %s frontend: %w", frontend.ID(), err)
	}
	out.StopMusic()
	logger.Info("finished", "state", session.State(), "score", session.Player().Score)
	return nil
}

// openAudio returns the speaker-backed engine. Without a usable speaker the
// engine stays uninitialised and every call reports audio.ErrUnavailable,
// which the session turns into music off.
func openAudio(logger *log.Logger) *audio.Engine {
	e := audio.New(logger)
	if err := e.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return e
}

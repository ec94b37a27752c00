package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a frontend interactively",
	Long: `Show a picker of the available frontends and play in the chosen one.
After the game is quit you return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --fps 30 --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
	menuCmd.Flags().BoolVar(&flagNoSFX, "no-sfx", false, "Start with sound effects off")
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
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

	rt := runtimeConfig()
	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = result.Config
		if result.Quit {
			return nil
		}

		if err := playOnce(result.FrontendID, cfg, rt, out, logger); err != nil {
			logger.Error("game ended with an error", "frontend", result.FrontendID, "error", err)
			cmd.PrintErrln("Error:", err)
		}
	}
}

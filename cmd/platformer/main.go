// platformer is a small 2D platformer that runs in the terminal or in a window.
//
// Usage:
//
//	platformer play               - Play in the terminal
//	platformer play -f window     - Play in a desktop window
//	platformer menu               - Pick a frontend interactively
//	platformer frontends          - List available frontends
//	platformer config             - Print the effective tuning configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load tuning overrides from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Kodland - a tiny platformer for the terminal and the desktop",
	Long: `Kodland is a single-level platformer. Climb the platforms, collect
coins, stomp enemies and reach the golden platform at the top.

Available commands:
  play       - Start the game
  menu       - Pick a frontend interactively
  frontends  - Show the available frontends
  config     - Print the effective tuning configuration

Examples:
  platformer play
  platformer play --frontend window
  platformer play --seed 42 --mute
  platformer config --config ./my-tuning.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. When quiet is set and no log file is
// given, logs are dropped so they do not tear the terminal frontend.
// The returned closer releases the log file.
func newLogger(quiet bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, closer, nil
}

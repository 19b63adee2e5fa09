package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/K, click  - Flap
  R                    - Restart (after a crash)
  T                    - Top scores (after a crash)
  M                    - Mute bells
  Ctrl+S               - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C             - Quit

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	res, err := loadResources(cmd.Context())
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage.
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Player: config.GetEnv("USER", ""),
		FPS:    flagFPS,
		Seed:   flagSeed,
	}
	if !flagMute {
		opts.Bell = os.Stdout
	}
	return tui.Run(res, opts, width, height)
}

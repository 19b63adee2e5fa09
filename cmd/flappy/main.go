// flappy is a flappy-bird game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy sim               - Run a session headless and print the result
//	flappy scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60, env FLAPPY_FPS)
//	--seed <value>   - Set RNG seed for a reproducible course
//	--db <path>      - Set database path (default: ~/.flappy/scores.db, env FLAPPY_DB)
//	--config <path>  - Load a custom config YAML
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a terminal take on the flappy-bird game: the bird falls
every frame, a flap lifts it, and every pipe pair passed scores a point.
The first touch of a pipe or the ground ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless session
  scores   - View high scores

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy sim --autopilot --frames 5000
  flappy scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	//nolint:errcheck // A broken .env should not stop the game; flags still work
	config.LoadEnv()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", config.GetEnvInt("FLAPPY_FPS", 60), "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.GetEnv("FLAPPY_DB", "~/.flappy/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML, or TOML by .toml extension)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadResources loads the config and every asset it names.
func loadResources(ctx context.Context) (*flappy.Resources, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return nil, err
	}
	res, err := flappy.LoadResources(ctx, cfg, assets.ForDir(cfg.Assets.Dir))
	if err != nil {
		if assets.IsNotFound(err) && cfg.Assets.Dir != "" {
			logger.Warn("asset missing from assets.dir; leave it empty to use the built-in set", "dir", cfg.Assets.Dir)
		}
		return nil, err
	}
	logger.Debug("assets loaded", "sprites", len(res.Sprites), "sounds", len(res.Sounds), "dir", cfg.Assets.Dir)
	return res, nil
}

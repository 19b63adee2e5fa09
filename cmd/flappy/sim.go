package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagRealtime  bool
	flagSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a session headless",
	Long: `Run one session without a terminal UI and print how it ended.

Without input the bird falls until it hits a pipe or the ground. With
--autopilot a simple controller flaps for it. Frames run back to back
unless --realtime paces them at --fps.

Examples:
  flappy sim
  flappy sim --autopilot --frames 10000 --seed 7
  flappy sim --autopilot --realtime --fps 60
  flappy sim --autopilot --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Stop after this many frames (0 = until the session ends)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot flap")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the score in the scores database")
}

// simAudio counts the sounds a headless session plays.
type simAudio struct {
	played map[flappy.Sound]int
}

func (a *simAudio) Play(s flappy.Sound) { a.played[s]++ }
func (a *simAudio) Pause(flappy.Sound) {}

func runSim(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := loadResources(ctx)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	audio := &simAudio{played: make(map[flappy.Sound]int)}
	session, err := res.NewSession(seed, flappy.WithAudio(audio))
	if err != nil {
		return err
	}

	var sched flappy.Scheduler = flappy.Immediate
	if flagRealtime {
		ticker := flappy.NewTickerScheduler(flagFPS)
		defer ticker.Stop()
		sched = ticker
	}
	if flagAutopilot {
		sched = flappy.BeforeNext(flappy.Autopilot(session), sched)
	}
	if flagFrames > 0 {
		sched = flappy.FrameBudget(flagFrames, sched)
	}

	start := time.Now()
	err = flappy.Run(ctx, session, sched)

	outcome := "crashed"
	switch {
	case errors.Is(err, flappy.ErrFrameBudget):
		outcome = "survived"
	case errors.Is(err, context.Canceled):
		outcome = "interrupted"
	case err != nil:
		return err
	}

	logger.Debug("simulation finished", "elapsed", time.Since(start), "sounds", audio.played)

	fmt.Printf("seed:    %d\n", seed)
	fmt.Printf("outcome: %s\n", outcome)
	fmt.Printf("frames:  %d\n", session.Frame())
	fmt.Printf("score:   %d\n", session.Score())

	if flagSave && session.Score() > 0 {
		return saveSimScore(ctx, session)
	}
	return nil
}

// saveSimScore records a headless run under the player name "sim".
func saveSimScore(ctx context.Context, session *flappy.Session) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveScore(ctx, storage.ScoreEntry{
		GameID: flappy.GameID,
		Player: "sim",
		Score:  session.Score(),
		Frames: session.Frame(),
	})
	if err != nil {
		return err
	}
	logger.Info("score saved", "id", id, "path", flagDBPath)
	return nil
}
